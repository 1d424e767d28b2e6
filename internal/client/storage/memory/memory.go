// Package memory provides a map-backed implementation of storage.KV.
// It exists for tests: the auth service is exercised against it without
// touching the filesystem.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/countries-explorer/internal/client/storage"
)

// Storage is an in-memory key-value store
type Storage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// Compile-time check that Storage implements storage.KV
var _ storage.KV = (*Storage)(nil)

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		data: make(map[string][]byte),
	}
}

// Get returns the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}

	// Возвращаем копию
	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

// Set stores value under key
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored

	return nil
}

// Delete removes key from the store. Deleting an absent key is a no-op.
func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

// Close is a no-op for the in-memory store
func (s *Storage) Close() error {
	return nil
}

// Len returns the number of stored keys (test helper)
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

// Has reports whether key exists (test helper)
func (s *Storage) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[key]
	return ok
}
