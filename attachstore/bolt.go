package attachstore

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketImages = []byte("images")
	keyName      = []byte("name")
	keyData      = []byte("data")
)

// BoltStore reads attachments from a bbolt file. Each reference is a nested
// bucket below "images" holding "name" and "data".
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens path. A read-only store shares the file with the writer process.
func OpenBolt(path string, readOnly bool) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second, ReadOnly: readOnly})
	if err != nil {
		return nil, fmt.Errorf("open bolt `%s`: %w", path, err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Put(ref, filename string, data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		images, err := tx.CreateBucketIfNotExists(bucketImages)
		if err != nil {
			return err
		}
		b, err := images.CreateBucketIfNotExists([]byte(ref))
		if err != nil {
			return err
		}
		if err := b.Put(keyName, []byte(filename)); err != nil {
			return err
		}
		return b.Put(keyData, data)
	})
}

func (s *BoltStore) Get(ref string) ([]byte, string, error) {
	var data []byte
	var filename string
	err := s.db.View(func(tx *bbolt.Tx) error {
		images := tx.Bucket(bucketImages)
		if images == nil {
			return ErrNotFound
		}
		b := images.Bucket([]byte(ref))
		if b == nil {
			return ErrNotFound
		}
		// values are only valid inside the transaction.
		data = append([]byte(nil), b.Get(keyData)...)
		filename = string(b.Get(keyName))
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return data, filename, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
