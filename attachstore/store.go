// Package attachstore looks up local images by reference.
package attachstore

import (
	"errors"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/pborman/uuid"
)

var ErrNotFound = errors.New("attachment not found")

type IStore interface {
	// Get returns the bytes of ref and a filename hint, which may be empty.
	Get(ref string) (data []byte, filename string, err error)
}

// Filename returns the base name of hint, or a random name with an extension
// guessed from data.
func Filename(hint string, data []byte) string {
	if hint != "" {
		if base := filepath.Base(hint); base != "." && base != string(filepath.Separator) {
			return base
		}
	}
	ext := ".bin"
	switch http.DetectContentType(data) {
	case "image/png":
		ext = ".png"
	case "image/jpeg":
		ext = ".jpg"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}
	return "gchat" + uuid.New() + ext
}

type entry struct {
	data     []byte
	filename string
}

// MemoryStore keeps attachments in memory.
type MemoryStore struct {
	sync.RWMutex
	kv map[string]entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{kv: make(map[string]entry)}
}

func (s *MemoryStore) Put(ref, filename string, data []byte) {
	s.Lock()
	s.kv[ref] = entry{data: data, filename: filename}
	s.Unlock()
}

func (s *MemoryStore) Get(ref string) ([]byte, string, error) {
	s.RLock()
	defer s.RUnlock()
	e, ok := s.kv[ref]
	if !ok {
		return nil, "", ErrNotFound
	}
	return e.data, e.filename, nil
}
