package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore is a BlobStore backed by a local directory. Keys are random
// UUIDs, so the original file name never reaches the filesystem.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Put stores the content under a fresh UUID key
func (s *DiskStore) Put(content io.Reader) (string, error) {
	key := uuid.NewString()

	f, err := os.Create(s.path(key))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(s.path(key))
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(s.path(key))
		return "", err
	}
	return key, nil
}

// Get opens the blob stored under key
func (s *DiskStore) Get(key string) (io.ReadCloser, error) {
	f, err := os.Open(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes the blob stored under key
func (s *DiskStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *DiskStore) path(key string) string {
	// Keys are UUIDs we generated; Base strips anything path-like anyway.
	return filepath.Join(s.dir, filepath.Base(key))
}
