package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// memoryStore is the in-process store used for tests and for running the
// storefront without MongoDB. Values are kept JSON-encoded so Get returns
// an independent copy, like a real store would.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Put(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Get(_ context.Context, key string, out any) error {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode value for key %q: %w", key, err)
	}
	return nil
}

func (s *memoryStore) Ping(context.Context) error {
	return nil
}
