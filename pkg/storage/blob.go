// Package storage holds the public blob store used for hero background
// images and videos.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrForeignURL is returned by Delete for URLs this store did not issue.
var ErrForeignURL = errors.New("storage: url is not managed by this store")

// BlobStore writes publicly readable objects and deletes them by URL.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, url string) error
}
