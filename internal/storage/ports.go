package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get for keys that were never written.
var ErrNotFound = errors.New("key not found")

// KV is a minimal key-value medium holding whole snapshots.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
}
