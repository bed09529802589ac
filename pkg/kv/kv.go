// Package kv provides the single-key value stores that hold the site
// content record.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("kv: key not found")

// Backend reads and writes opaque values by key. Writes replace the whole
// value; there is no partial update or compare-and-swap.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Name() string
}
