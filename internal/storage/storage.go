package storage

import (
	"context"
	"fmt"
)

// Store is the persistent key-value medium the wallet record lives in.
// Values must survive process restarts (memory backend excepted).
type Store interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value atomically.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key succeeds.
	Remove(ctx context.Context, key string) error

	// Close releases the underlying medium.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendBolt   = "bolt"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Open selects a backend once at startup.
// path is the database file for bolt and the directory for file; memory ignores it.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendBolt:
		return NewBoltStore(path)
	case BackendFile:
		return NewFileStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
