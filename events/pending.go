package events

import (
	"sync"
	"time"

	"github.com/mqy/gchat/metrics"
)

const (
	DefaultPendingTTL = 10 * time.Minute
	DefaultPendingMax = 1024
)

// Pending holds correlation ids of sent messages not yet seen on the event
// stream. Entries expire after ttl; beyond max entries the oldest is evicted.
type Pending struct {
	ttl time.Duration
	max int
	now func() time.Time

	sync.Mutex
	entries map[uint64]time.Time
	// insertion order, may hold ids already removed.
	order []uint64
}

func NewPending(ttl time.Duration, max int) *Pending {
	return &Pending{
		ttl:     ttl,
		max:     max,
		now:     time.Now,
		entries: make(map[uint64]time.Time),
	}
}

func (p *Pending) Add(id uint64) {
	p.Lock()
	defer p.Unlock()
	p.entries[id] = p.now()
	p.order = append(p.order, id)
	p.evict()
}

func (p *Pending) Remove(id uint64) {
	p.Lock()
	defer p.Unlock()
	delete(p.entries, id)
	p.evict()
}

// Confirm removes id and reports whether it was pending.
func (p *Pending) Confirm(id uint64) bool {
	p.Lock()
	defer p.Unlock()
	p.evict()
	if _, ok := p.entries[id]; !ok {
		return false
	}
	delete(p.entries, id)
	return true
}

func (p *Pending) Len() int {
	p.Lock()
	defer p.Unlock()
	p.evict()
	return len(p.entries)
}

// must hold the lock.
func (p *Pending) evict() {
	deadline := p.now().Add(-p.ttl)
	for len(p.order) > 0 {
		id := p.order[0]
		added, ok := p.entries[id]
		switch {
		case !ok:
		case len(p.entries) > p.max || !added.After(deadline):
			delete(p.entries, id)
		default:
			metrics.PendingEchoes.Set(float64(len(p.entries)))
			return
		}
		p.order = p.order[1:]
	}
	metrics.PendingEchoes.Set(float64(len(p.entries)))
}
