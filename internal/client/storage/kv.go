package storage

import "context"

//go:generate moq -out kv_mock.go . KV

// KV defines the local key-value store the explorer keeps its state in.
// It is the lowest storage layer: values are opaque bytes, callers decide
// on serialization. The store is assumed to be always available; any error
// returned here is an I/O failure, not a business condition.
type KV interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key from the store.
	// Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the underlying store resources.
	Close() error
}
