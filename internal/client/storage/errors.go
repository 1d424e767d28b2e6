package storage

import "errors"

// Common client storage errors
var (
	// ErrKeyNotFound indicates that the requested key does not exist
	ErrKeyNotFound = errors.New("key not found")
)
