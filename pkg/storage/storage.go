// Package storage keeps small blobs, such as remembered admin preferences,
// as files under a single directory.
package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("storage: key not found")
	ErrInvalidKey = errors.New("storage: invalid key")
)

// System stores opaque blobs by slash-separated key. Keys must stay inside
// the store; empty, absolute, and escaping keys return ErrInvalidKey.
type System interface {
	// Store replaces the blob at key.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns ErrNotFound for keys never stored.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
}
