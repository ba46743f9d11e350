package dispatch

import (
	"context"
	"sync"

	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/metrics"
)

type upload struct {
	conv   chat.ConversationID
	cancel context.CancelFunc
}

// uploadStore tracks in-flight attachment uploads per conversation.
type uploadStore struct {
	sync.RWMutex
	next    uint64
	uploads map[uint64]*upload
}

func newUploadStore() *uploadStore {
	return &uploadStore{uploads: make(map[uint64]*upload)}
}

func (us *uploadStore) add(conv chat.ConversationID, cancel context.CancelFunc) uint64 {
	us.Lock()
	us.next++
	id := us.next
	us.uploads[id] = &upload{conv: conv, cancel: cancel}
	n := len(us.uploads)
	us.Unlock()
	metrics.UploadsInflight.Set(float64(n))
	return id
}

func (us *uploadStore) del(id uint64) bool {
	us.Lock()
	u, ok := us.uploads[id]
	if ok {
		delete(us.uploads, id)
	}
	n := len(us.uploads)
	us.Unlock()
	if ok {
		u.cancel()
		metrics.UploadsInflight.Set(float64(n))
	}
	return ok
}

func (us *uploadStore) countByConv(conv chat.ConversationID) int {
	us.RLock()
	defer us.RUnlock()
	n := 0
	for _, u := range us.uploads {
		if u.conv == conv {
			n++
		}
	}
	return n
}

// cancelConv cancels every upload for conv. The uploads stay registered until
// their senders call del.
func (us *uploadStore) cancelConv(conv chat.ConversationID) int {
	us.RLock()
	defer us.RUnlock()
	n := 0
	for _, u := range us.uploads {
		if u.conv == conv {
			u.cancel()
			n++
		}
	}
	return n
}

func (us *uploadStore) close() {
	us.RLock()
	defer us.RUnlock()
	for _, u := range us.uploads {
		u.cancel()
	}
}
