package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/AlexZinkM/unified-wallet/internal/crypto"
	"github.com/AlexZinkM/unified-wallet/internal/model"
	"github.com/AlexZinkM/unified-wallet/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenStore fails every operation like an unreachable medium.
type brokenStore struct{}

var errDiskGone = errors.New("disk gone")

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errDiskGone }
func (brokenStore) Set(context.Context, string, []byte) error { return errDiskGone }
func (brokenStore) Remove(context.Context, string) error { return errDiskGone }
func (brokenStore) Close() error { return nil }

func testWallet(t *testing.T) *model.EncryptedWallet {
	t.Helper()
	sol, err := crypto.Encrypt([]byte("solana"), []byte("pw"))
	require.NoError(t, err)
	eth, err := crypto.Encrypt([]byte("ethereum"), []byte("pw"))
	require.NoError(t, err)
	return &model.EncryptedWallet{Solana: sol, Ethereum: eth}
}

func TestStoreSaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemoryStore())

	w, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, w)

	want := testWallet(t)
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// overwrite
	other := testWallet(t)
	require.NoError(t, s.Save(ctx, other))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, other, got)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Clear(ctx), "clear is idempotent")
}

func TestStorePersistedShape(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	s := NewStore(kv)
	require.NoError(t, s.Save(ctx, testWallet(t)))

	raw, err := kv.Get(ctx, "wallet")
	require.NoError(t, err)
	assert.Regexp(t, `^\{"solana":\{"salt":"[0-9a-f]{32}","iv":"[0-9a-f]{24}","encrypted":"[0-9a-f]+"\},"ethereum":\{"salt":"[0-9a-f]{32}","iv":"[0-9a-f]{24}","encrypted":"[0-9a-f]+"\}\}$`, string(raw))
}

func TestStoreLoadTreatsCorruptRecordsAsAbsent(t *testing.T) {
	ctx := context.Background()
	good := testWallet(t)

	records := map[string]string{
		"not json":         `{"solana":`,
		"empty object":     `{}`,
		"missing ethereum": `{"solana":{"salt":"` + good.Solana.Salt + `","iv":"` + good.Solana.IV + `","encrypted":"` + good.Solana.Encrypted + `"}}`,
		"missing iv":       `{"solana":{"salt":"` + good.Solana.Salt + `","encrypted":"` + good.Solana.Encrypted + `"},"ethereum":{"salt":"` + good.Ethereum.Salt + `","iv":"` + good.Ethereum.IV + `","encrypted":"` + good.Ethereum.Encrypted + `"}}`,
		"numeric field":    `{"solana":{"salt":1,"iv":"` + good.Solana.IV + `","encrypted":"` + good.Solana.Encrypted + `"},"ethereum":{"salt":"` + good.Ethereum.Salt + `","iv":"` + good.Ethereum.IV + `","encrypted":"` + good.Ethereum.Encrypted + `"}}`,
		"short salt":       `{"solana":{"salt":"abcd","iv":"` + good.Solana.IV + `","encrypted":"` + good.Solana.Encrypted + `"},"ethereum":{"salt":"` + good.Ethereum.Salt + `","iv":"` + good.Ethereum.IV + `","encrypted":"` + good.Ethereum.Encrypted + `"}}`,
		"null":             `null`,
	}
	for name, rec := range records {
		kv := storage.NewMemoryStore()
		require.NoError(t, kv.Set(ctx, "wallet", []byte(rec)))

		w, err := NewStore(kv).Load(ctx)
		assert.NoError(t, err, name)
		assert.Nil(t, w, name)
	}
}

func TestStoreSurfacesStorageFailure(t *testing.T) {
	ctx := context.Background()
	s := NewStore(brokenStore{})

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, model.ErrStorageFailure)
	assert.ErrorIs(t, err, errDiskGone)

	assert.ErrorIs(t, s.Save(ctx, testWallet(t)), model.ErrStorageFailure)
	assert.ErrorIs(t, s.Clear(ctx), model.ErrStorageFailure)
}

func TestStoreRejectsPartialWallet(t *testing.T) {
	w := testWallet(t)
	w.Ethereum = nil

	s := NewStore(storage.NewMemoryStore())
	assert.EqualError(t, s.Save(context.Background(), w), "refusing to save malformed wallet record")
}
