// Package storage provides the durable key-value adapter the session and
// appointment state write through to. Values are opaque blobs; the caller
// owns serialization.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is a string-keyed blob store. Implementations must be safe for
// concurrent use.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
