package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	boltStore, err := Open(BackendBolt, filepath.Join(dir, "bolt", "wallet.db"))
	require.NoError(t, err)
	fileStore, err := Open(BackendFile, filepath.Join(dir, "files"))
	require.NoError(t, err)
	memStore, err := Open(BackendMemory, "")
	require.NoError(t, err)

	stores := map[string]Store{
		BackendBolt:   boltStore,
		BackendFile:   fileStore,
		BackendMemory: memStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			v, err := s.Get(ctx, "wallet")
			require.NoError(t, err)
			assert.Nil(t, v, "absent key reads as nil")

			require.NoError(t, s.Set(ctx, "wallet", []byte(`{"a":1}`)))
			v, err = s.Get(ctx, "wallet")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":1}`), v)

			// last writer wins
			require.NoError(t, s.Set(ctx, "wallet", []byte(`{"a":2}`)))
			v, err = s.Get(ctx, "wallet")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":2}`), v)

			// returned values are copies
			v[0] = 'X'
			v2, err := s.Get(ctx, "wallet")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":2}`), v2)

			require.NoError(t, s.Remove(ctx, "wallet"))
			v, err = s.Get(ctx, "wallet")
			require.NoError(t, err)
			assert.Nil(t, v)

			// idempotent remove
			require.NoError(t, s.Remove(ctx, "wallet"))
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("chrome-storage", "")
	assert.Error(t, err)
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wallet.db")

	s, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "wallet", []byte("persisted")))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "double close is safe")

	s, err = NewBoltStore(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, "wallet")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), v)
}

func TestFileStoreWritesPrivateFileWithoutLeftovers(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "wallet", []byte("data")))

	info, err := os.Stat(filepath.Join(dir, "wallet.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, s.Set(context.Background(), "../escape", []byte("x")))
	_, err = s.Get(context.Background(), "a/b")
	assert.Error(t, err)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, s := range backends(t) {
		if name == BackendMemory {
			continue
		}
		assert.Error(t, s.Set(ctx, "wallet", []byte("x")), name)
	}
}
