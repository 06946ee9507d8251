package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used in tests and as a fallback when no
// store file is configured. Values are kept JSON-encoded so Get/Put round-trip
// exactly like the bbolt implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get unmarshals the value at key into out.
func (s *MemoryStore) Get(key string, out interface{}) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode value at %q: %w", key, err)
	}
	return nil
}

// Put marshals val and replaces the value at key.
func (s *MemoryStore) Put(key string, val interface{}) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("failed to encode value for %q: %w", key, err)
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Delete removes the key.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
