// Package kv defines the durable key/value slot the list is persisted into.
package kv

import "context"

// Store is a string-valued key/value slot. Set overwrites unconditionally;
// concurrent writers race last-writer-wins.
type Store interface {
	// Get returns the raw value under key. ok is false when nothing was ever
	// written, which is distinct from an empty string.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
