// Package storage defines the synchronous key-value persistence contract
// backing the client-state collections and tour progress. Values are full
// JSON snapshots written as one string, so a reader never observes a
// partially written collection.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is the durable key-value store interface. Implementations must be safe
// for use from a single goroutine at a time; Set replaces the whole value.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
