package presence

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/mqy/gchat/metrics"
)

const (
	DefaultPollInterval = time.Minute
	MinPollInterval     = 10 * time.Second
	MaxPollInterval     = 10 * time.Minute
)

func ValidateInterval(d time.Duration) error {
	if d < MinPollInterval || d > MaxPollInterval {
		return fmt.Errorf("presence poll interval %s, expect in range [%s, %s]", d, MinPollInterval, MaxPollInterval)
	}
	return nil
}

// Poller calls poll on every tick while connected reports true. At most one
// poll is in flight at a time; ticks that find one running are skipped.
type Poller struct {
	interval  time.Duration
	poll      func(context.Context) error
	connected func() bool

	sync.Mutex
	polling bool
	wg      sync.WaitGroup
}

func NewPoller(interval time.Duration, connected func() bool, poll func(context.Context) error) *Poller {
	return &Poller{interval: interval, poll: poll, connected: connected}
}

// Run ticks until ctx is done and waits for the last poll to return.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer func() {
		ticker.Stop()
		p.wg.Wait()
		glog.Info("presence poller: exited")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.wg.Add(1)
			go func() {
				defer p.wg.Done()
				p.Tick(ctx)
			}()
		}
	}
}

// Tick runs one poll unless disconnected or a poll is in flight. It reports
// whether a poll ran.
func (p *Poller) Tick(ctx context.Context) bool {
	if !p.connected() {
		metrics.PresencePolls.WithLabelValues("skipped").Inc()
		return false
	}

	p.Lock()
	if p.polling {
		p.Unlock()
		metrics.PresencePolls.WithLabelValues("skipped").Inc()
		glog.V(5).Info("presence poller: previous poll in flight, skip")
		return false
	}
	p.polling = true
	p.Unlock()

	defer func() {
		p.Lock()
		p.polling = false
		p.Unlock()
	}()

	if err := p.poll(ctx); err != nil {
		metrics.PresencePolls.WithLabelValues("error").Inc()
		glog.Errorf("presence poller: %v", err)
	} else {
		metrics.PresencePolls.WithLabelValues("ok").Inc()
	}
	return true
}
