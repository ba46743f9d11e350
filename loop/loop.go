// Package loop runs closures one at a time on a single goroutine.
package loop

import (
	"context"
	"errors"
	"sync"

	"github.com/golang/glog"
)

var ErrStopped = errors.New("loop stopped")

// Executor serializes closures.
type Executor interface {
	// Post queues fn. It returns false when the executor is stopped.
	Post(fn func()) bool
	// Do runs fn and waits for it. It must not be called from inside the executor.
	Do(ctx context.Context, fn func()) error
}

// Loop is an Executor with an unbounded queue, drained by Run.
type Loop struct {
	sync.Mutex
	queue   []func()
	stopped bool
	wake    chan struct{}
	done    chan struct{}
}

func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (l *Loop) Post(fn func()) bool {
	l.Lock()
	if l.stopped {
		l.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrStopped
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		// the closure may have run right before the stop.
		select {
		case <-finished:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains the queue until ctx is done. Closures still queued at that time
// are dropped.
func (l *Loop) Run(ctx context.Context) {
	defer func() {
		l.Lock()
		l.stopped = true
		dropped := len(l.queue)
		l.queue = nil
		l.Unlock()
		close(l.done)
		glog.Infof("loop: exited, %d queued closures dropped", dropped)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}

		for {
			l.Lock()
			if len(l.queue) == 0 {
				l.Unlock()
				break
			}
			batch := l.queue
			l.queue = nil
			l.Unlock()

			glog.V(7).Infof("loop: run %d closures", len(batch))
			for _, fn := range batch {
				if ctx.Err() != nil {
					return
				}
				fn()
			}
		}
	}
}

// Inline runs closures on the caller's goroutine. It is meant for tests.
type Inline struct{}

func (Inline) Post(fn func()) bool {
	fn()
	return true
}

func (Inline) Do(_ context.Context, fn func()) error {
	fn()
	return nil
}
