// Package kv defines the flat key/value contract every collection blob is
// persisted through.
package kv

import (
	"context"
	"errors"
)

var ErrUnsupportedDriver = errors.New("kv: unsupported store driver")

// Store holds opaque payloads under string keys. Get reports found=false for
// an absent key instead of an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Closer is implemented by backends that hold connections.
type Closer interface {
	Close() error
}

// Close releases the backend when it holds resources.
func Close(s Store) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}
