package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"syscall"
	"time"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	kafka "github.com/segmentio/kafka-go"

	"github.com/mqy/gchat/attachstore"
	"github.com/mqy/gchat/auth"
	"github.com/mqy/gchat/config"
	"github.com/mqy/gchat/envelope"
	"github.com/mqy/gchat/notify"
	"github.com/mqy/gchat/presence"
	"github.com/mqy/gchat/render"
	"github.com/mqy/gchat/roster"
	"github.com/mqy/gchat/rpc"
	"github.com/mqy/gchat/session"
	"github.com/mqy/gchat/stream"
)

const (
	avatarTimeout    = 30 * time.Second
	kafkaDialTimeout = 10 * time.Second
)

var (
	flagConfig         = flag.String("config", "gchat.toml", "account config file")
	flagPidFile        = flag.String("pid-file", "gchat.pid", "pid file")
	flagMetricsAddr    = flag.String("metrics-addr", "127.0.0.1:9100", "prometheus metrics address, ip:port")
	flagDisableMetrics = flag.Bool("disable-metrics", false, "disable prometheus metrics")
)

func main() {
	flag.Parse()

	// NOTE: os.Exit() does not call defers.
	os.Exit(run())
}

func run() int {
	defer glog.Flush()

	if v := validateFlags(); v > 0 {
		return v
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return errorf("--config: %v", err)
	}

	pid := os.Getpid()

	if err := savePid(*flagPidFile, pid); err != nil {
		return errorf("pid file: %v", err)
	}
	defer func() {
		_ = os.Remove(*flagPidFile)
	}()

	glog.Info("gchat is starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authClient := newAuthClient(cfg)

	invoker, closeInvoker, err := newInvoker(ctx, cfg, authClient)
	if err != nil {
		return errorf("rpc: %v", err)
	}
	defer closeInvoker()

	var uploader rpc.IUploader
	if cfg.Endpoints.Upload != "" {
		uploader = rpc.NewHTTPUploader(cfg.Endpoints.Upload, authClient, cfg.RPCTimeout())
	}

	var store attachstore.IStore = attachstore.NewMemoryStore()
	if cfg.Attachments.BoltPath != "" {
		bs, err := attachstore.OpenBolt(cfg.Attachments.BoltPath, true)
		if err != nil {
			return errorf("attachments: %v", err)
		}
		defer bs.Close()
		store = bs
	}

	sinks := notify.Multi{notify.LogSink{}}
	var kafkaSink *notify.KafkaSink
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink = notify.NewKafkaSink(kafka.NewWriter(kafka.WriterConfig{
			Brokers:  cfg.Kafka.Brokers,
			Topic:    cfg.Kafka.Topic,
			Balancer: &kafka.Hash{},
			Dialer: &kafka.Dialer{
				Timeout:   kafkaDialTimeout,
				DualStack: true,
			},
		}), cfg.Kafka.MaxBytes)
		sinks = append(sinks, kafkaSink)
	}

	env := envelope.NewBuilder(authClient)
	sess := session.New(&session.Cfg{
		Client:   rpc.NewClient(invoker, env),
		Env:      env,
		Stream:   stream.NewClient(cfg.Endpoints.Stream, authClient),
		Sink:     sinks,
		Avatars:  roster.NewHTTPAvatarFetcher(avatarTimeout),
		Renderer: render.NewMarkdown(),
		Store:    store,
		Uploader: uploader,

		HideSelf:        cfg.Client.HideSelf,
		Presence:        presence.Options{TreatInvisibleAsOffline: cfg.Client.TreatInvisibleAsOffline},
		PollInterval:    cfg.PresencePollInterval(),
		CatchUpPageSize: cfg.Client.CatchUpPageSize,
		WorldPageSize:   cfg.Client.WorldPageSize,
	})

	var metricsServer *http.Server
	if !*flagDisableMetrics {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(
			prometheus.DefaultGatherer,
			promhttp.HandlerOpts{},
		))
		metricsServer = &http.Server{Addr: *flagMetricsAddr, Handler: mux}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				glog.Errorf("metrics server: %v", err)
			}
		}()
	}

	stopNotifyChan := make(chan struct{})
	go func() {
		defer close(stopNotifyChan)
		if kafkaSink != nil {
			go kafkaSink.Run(ctx)
		}
		sess.Run(ctx)
	}()

	glog.Infof("`kill -USR1 %d` to dump goroutines; `CTRL+c` or `kill %d` to graceful stop", pid, pid)

	var stopping bool

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGUSR1, syscall.SIGTERM, syscall.SIGINT)

	for sig := range sigCh {
		switch sig {
		case syscall.SIGUSR1:
			dumpGoroutines()
		case syscall.SIGTERM, syscall.SIGINT:
			if stopping {
				glog.Infof("gchat is already in stop")
				continue
			}
			stopping = true
			glog.Infof("received signal `%s` stopping", sig.String())
			go func() {
				cancel()
				<-stopNotifyChan
				if metricsServer != nil {
					sctx, scancel := context.WithTimeout(context.Background(), 3*time.Second)
					_ = metricsServer.Shutdown(sctx)
					scancel()
				}
				signal.Stop(sigCh)
				close(sigCh)
			}()
		}
	}

	glog.Info("gchat exited")
	return 0
}

func newAuthClient(cfg *config.Config) auth.Client {
	if cfg.Account.TokenFile != "" {
		return auth.NewFileClient(cfg.Account.TokenFile)
	}
	return auth.NewStaticClient(cfg.Account.Token)
}

func newInvoker(ctx context.Context, cfg *config.Config, a auth.Client) (rpc.IInvoker, func(), error) {
	if cfg.Endpoints.Transport == config.TransportGRPC {
		inv, err := rpc.DialGRPC(ctx, cfg.Endpoints.GRPCAddr, a, cfg.RPCTimeout(), cfg.Endpoints.GRPCInsecure)
		if err != nil {
			return nil, nil, err
		}
		return inv, func() { _ = inv.Close() }, nil
	}
	inv, err := rpc.NewHTTPInvoker(cfg.Endpoints.API, a, cfg.RPCTimeout())
	if err != nil {
		return nil, nil, err
	}
	return inv, func() {}, nil
}

func dumpGoroutines() {
	if p := pprof.Lookup("goroutine"); p != nil {
		_ = p.WriteTo(os.Stderr, 1)
	}
}

func validateFlags() int {
	if *flagConfig == "" {
		return errorf("--config is required")
	}
	if _, err := os.Stat(*flagConfig); err != nil {
		return errorf("--config: %v", err)
	}
	if *flagPidFile == "" {
		return errorf("--pid-file is required")
	}
	if !*flagDisableMetrics {
		if *flagMetricsAddr == "" {
			return errorf("--metrics-addr is required")
		}
		if err := validateAddr(*flagMetricsAddr); err != nil {
			return errorf("--metrics-addr: %v", err)
		}
	}
	return 0
}

func validateAddr(s string) error {
	ips, _, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("error split host port from `%s`: %v", s, err)
	}
	ip := net.ParseIP(ips)
	if ip == nil {
		return fmt.Errorf("error parse IP from host `%s`", ips)
	}
	if !ip.IsLoopback() && !ip.IsPrivate() {
		return fmt.Errorf("`%s` is not loopback or private address", ips)
	}
	return nil
}

func errorf(fmt string, args ...interface{}) int {
	glog.Errorf(fmt, args...)
	return 1
}

func savePid(name string, pid int) error {
	if _, err := os.Stat(name); err == nil {
		// Ok, see, if we have a stale lockfile here
		content, err := ioutil.ReadFile(name)
		if err != nil {
			return err
		}
		if len(content) > 0 {
			oldPid, err := strconv.Atoi(string(content))
			if err != nil {
				return err
			}

			proc, err := os.FindProcess(oldPid)
			if err != nil {
				return err
			}
			defer proc.Release()

			if err := proc.Signal(syscall.Signal(0)); err == nil {
				return fmt.Errorf("pid file: exists with pid: %d, the process is running", oldPid)
			} else {
				glog.Infof("pid file exists with pid: %d, but is not running", oldPid)
			}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("pid file: stat error: %v", err)
	}

	if err := ioutil.WriteFile(name, []byte(strconv.Itoa(pid)), 0600); err != nil {
		return fmt.Errorf("pid file: write error: %v", err)
	}
	glog.Infof("pid file: write pid done")
	return nil
}
