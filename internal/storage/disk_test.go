package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskStoreRoundTrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	key, err := store.Put(strings.NewReader("invoice body"))
	require.NoError(t, err)
	require.NotEmpty(t, key)

	rc, err := store.Get(key)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "invoice body", string(content))
}

func TestDiskStoreKeysAreUnique(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Put(strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Put(strings.NewReader("b"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestDiskStoreGetMissingKey(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("no-such-key")
	require.ErrorIs(t, err, ErrBlobNotFound)
}

func TestDiskStoreDeleteIsIdempotent(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	key, err := store.Put(strings.NewReader("gone soon"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(key))
	require.NoError(t, store.Delete(key))

	_, err = store.Get(key)
	require.ErrorIs(t, err, ErrBlobNotFound)
}
