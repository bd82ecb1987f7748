// Package storage persists uploaded file bytes. Attachment metadata lives in
// the database; only the raw content goes through a BlobStore.
package storage

import (
	"errors"
	"io"
)

// ErrBlobNotFound is returned when no blob exists under the given key.
var ErrBlobNotFound = errors.New("storage: blob not found")

// BlobStore reads and writes opaque blobs by key.
type BlobStore interface {
	// Put stores the content and returns the generated key.
	Put(content io.Reader) (string, error)

	// Get opens the blob for reading. The caller closes it.
	Get(key string) (io.ReadCloser, error)

	// Delete removes the blob. Deleting a missing key is not an error.
	Delete(key string) error
}
