package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/AlexZinkM/unified-wallet/internal/model"
	"github.com/AlexZinkM/unified-wallet/internal/storage"
)

// storageKey is the single key the wallet record is kept under.
const storageKey = "wallet"

// Store persists the one EncryptedWallet of this installation.
// Writes are serialized so concurrent clients cannot interleave them.
type Store struct {
	kv storage.Store
	mu sync.Mutex
}

// NewStore wraps a storage backend.
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// Save overwrites the stored wallet.
func (s *Store) Save(ctx context.Context, w *model.EncryptedWallet) error {
	if !w.Valid() {
		return errors.New("refusing to save malformed wallet record")
	}

	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("%w: failed to save wallet: %w", model.ErrStorageFailure, err)
	}
	return nil
}

// Load returns the stored wallet, or nil when none exists.
// A present but structurally invalid record is reported as nil too; only
// backend I/O problems return an error.
func (s *Store) Load(ctx context.Context) (*model.EncryptedWallet, error) {
	data, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load wallet: %w", model.ErrStorageFailure, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var w model.EncryptedWallet
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, nil
	}
	if !w.Valid() {
		return nil, nil
	}
	return &w, nil
}

// Clear deletes the stored wallet. Clearing an empty store succeeds.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(ctx, storageKey); err != nil {
		return fmt.Errorf("%w: failed to clear wallet: %w", model.ErrStorageFailure, err)
	}
	return nil
}
