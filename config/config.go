// Package config loads the account file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/mqy/gchat/events"
	"github.com/mqy/gchat/presence"
	"github.com/mqy/gchat/roster"
)

const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"

	MinPageSize = 1
	MaxPageSize = 1000

	MinRPCTimeoutSecs = 1
	MaxRPCTimeoutSecs = 300
)

// Config is the account file, e.g. gchat.toml.
type Config struct {
	Account     Account     `toml:"account"`
	Endpoints   Endpoints   `toml:"endpoints"`
	Client      Client      `toml:"client"`
	Kafka       Kafka       `toml:"kafka"`
	Attachments Attachments `toml:"attachments"`
}

type Account struct {
	// Token is a static bearer token. TokenFile names a file that an external
	// login tool keeps fresh. Exactly one must be set.
	Token     string `toml:"token"`
	TokenFile string `toml:"token_file"`
}

type Endpoints struct {
	Transport    string `toml:"transport"`
	API          string `toml:"api"`
	GRPCAddr     string `toml:"grpc_addr"`
	GRPCInsecure bool   `toml:"grpc_insecure"`
	Stream       string `toml:"stream"`
	Upload       string `toml:"upload"`
}

type Client struct {
	HideSelf                bool  `toml:"hide_self"`
	TreatInvisibleAsOffline bool  `toml:"treat_invisible_as_offline"`
	PresencePollSecs        int64 `toml:"presence_poll_secs"`
	CatchUpPageSize         int32 `toml:"catch_up_page_size"`
	WorldPageSize           int32 `toml:"world_page_size"`
	RPCTimeoutSecs          int64 `toml:"rpc_timeout_secs"`
}

// Kafka configures the notification sink. It is off when Brokers is empty.
type Kafka struct {
	Brokers  []string `toml:"brokers"`
	Topic    string   `toml:"topic"`
	MaxBytes int      `toml:"max_bytes"`
}

type Attachments struct {
	// BoltPath is a bbolt database of images to attach. Optional.
	BoltPath string `toml:"bolt_path"`
}

func Default() *Config {
	return &Config{
		Endpoints: Endpoints{Transport: TransportHTTP},
		Client: Client{
			PresencePollSecs: int64(presence.DefaultPollInterval / time.Second),
			CatchUpPageSize:  events.DefaultPageSize,
			WorldPageSize:    roster.DefaultWorldPageSize,
			RPCTimeoutSecs:   30,
		},
		Kafka: Kafka{
			Topic:    "gchat-notifications",
			MaxBytes: 4096,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) PresencePollInterval() time.Duration {
	return time.Duration(c.Client.PresencePollSecs) * time.Second
}

func (c *Config) RPCTimeout() time.Duration {
	return time.Duration(c.Client.RPCTimeoutSecs) * time.Second
}

func (c *Config) Validate() error {
	var errs []error

	if (c.Account.Token == "") == (c.Account.TokenFile == "") {
		errs = append(errs, errors.New("exactly one of account.token and account.token_file is required"))
	}

	switch c.Endpoints.Transport {
	case TransportHTTP:
		if err := validateURL(c.Endpoints.API, "http", "https"); err != nil {
			errs = append(errs, fmt.Errorf("endpoints.api: %v", err))
		}
	case TransportGRPC:
		if c.Endpoints.GRPCAddr == "" {
			errs = append(errs, errors.New("endpoints.grpc_addr is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("endpoints.transport: `%s`, expect %s or %s", c.Endpoints.Transport, TransportHTTP, TransportGRPC))
	}
	if err := validateURL(c.Endpoints.Stream, "ws", "wss"); err != nil {
		errs = append(errs, fmt.Errorf("endpoints.stream: %v", err))
	}
	if c.Endpoints.Upload != "" {
		if err := validateURL(c.Endpoints.Upload, "http", "https"); err != nil {
			errs = append(errs, fmt.Errorf("endpoints.upload: %v", err))
		}
	}

	if err := presence.ValidateInterval(c.PresencePollInterval()); err != nil {
		errs = append(errs, fmt.Errorf("client.presence_poll_secs: %v", err))
	}
	if v := c.Client.CatchUpPageSize; v < MinPageSize || v > MaxPageSize {
		errs = append(errs, fmt.Errorf("client.catch_up_page_size: %d, expect in range [%d, %d]", v, MinPageSize, MaxPageSize))
	}
	if v := c.Client.WorldPageSize; v < MinPageSize || v > MaxPageSize {
		errs = append(errs, fmt.Errorf("client.world_page_size: %d, expect in range [%d, %d]", v, MinPageSize, MaxPageSize))
	}
	if v := c.Client.RPCTimeoutSecs; v < MinRPCTimeoutSecs || v > MaxRPCTimeoutSecs {
		errs = append(errs, fmt.Errorf("client.rpc_timeout_secs: %d, expect in range [%d, %d]", v, MinRPCTimeoutSecs, MaxRPCTimeoutSecs))
	}

	if len(c.Kafka.Brokers) > 0 {
		if c.Kafka.Topic == "" {
			errs = append(errs, errors.New("kafka.topic is required"))
		}
		if c.Kafka.MaxBytes <= 0 {
			errs = append(errs, errors.New("kafka.max_bytes must be positive"))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	msg := "config:"
	for _, err := range errs {
		msg += " " + err.Error() + ";"
	}
	return errors.New(msg[:len(msg)-1])
}

func validateURL(s string, schemes ...string) error {
	if s == "" {
		return errors.New("required")
	}
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	for _, scheme := range schemes {
		if u.Scheme == scheme && u.Host != "" {
			return nil
		}
	}
	return fmt.Errorf("`%s`, expect a %v url", s, schemes)
}
