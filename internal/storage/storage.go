package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been set.
var ErrKeyNotFound = errors.New("storage: key not found")

// SchemaVersion is stamped into every persisted envelope so a future layout
// change can migrate instead of silently misreading old records.
const SchemaVersion = 1

// Store is a persistent string key-value store. Values are JSON-serialized by
// the repositories that use it; the store itself treats them as opaque.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
