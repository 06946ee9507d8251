package store

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// stateBucket holds every portal key. One bucket is enough for a flat
// namespace.
var stateBucket = []byte("state")

// BoltStore is a bbolt-backed Store. Every Put runs in its own write
// transaction, which matches the persist-on-every-mutation contract.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the store file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Get unmarshals the value at key into out.
func (s *BoltStore) Get(key string, out interface{}) error {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(stateBucket).Get([]byte(key))
		if v == nil {
			return ErrKeyNotFound
		}
		raw = make([]byte, len(v))
		copy(raw, v)
		return nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode value at %q: %w", key, err)
	}
	return nil
}

// Put marshals val and replaces the value at key.
func (s *BoltStore) Put(key string, val interface{}) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to encode value for %q: %w", key, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Put([]byte(key), raw)
	})
}

// Delete removes the key.
func (s *BoltStore) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Delete([]byte(key))
	})
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
