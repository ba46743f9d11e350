package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPendingConfirm(t *testing.T) {
	p := NewPending(time.Minute, 10)
	p.Add(1)
	p.Add(2)
	assert.True(t, p.Confirm(1))
	assert.False(t, p.Confirm(1))
	p.Remove(2)
	assert.False(t, p.Confirm(2))
	assert.Equal(t, 0, p.Len())
}

func TestPendingExpires(t *testing.T) {
	now := time.Unix(1000, 0)
	p := NewPending(time.Minute, 10)
	p.now = func() time.Time { return now }

	p.Add(1)
	now = now.Add(30 * time.Second)
	p.Add(2)
	now = now.Add(31 * time.Second)

	assert.False(t, p.Confirm(1))
	assert.True(t, p.Confirm(2))
}

func TestPendingEvictsOldest(t *testing.T) {
	p := NewPending(time.Hour, 3)
	for id := uint64(1); id <= 5; id++ {
		p.Add(id)
	}
	assert.Equal(t, 3, p.Len())
	assert.False(t, p.Confirm(1))
	assert.False(t, p.Confirm(2))
	assert.True(t, p.Confirm(3))
	assert.True(t, p.Confirm(5))
}

func TestPendingReAdd(t *testing.T) {
	now := time.Unix(1000, 0)
	p := NewPending(time.Minute, 10)
	p.now = func() time.Time { return now }

	p.Add(1)
	p.Remove(1)
	now = now.Add(50 * time.Second)
	p.Add(1)
	now = now.Add(20 * time.Second)
	assert.True(t, p.Confirm(1))
}
