package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"sync"
	"time"

	"github.com/AlexZinkM/unified-wallet/internal/crypto"
	"github.com/AlexZinkM/unified-wallet/internal/keys"
	"github.com/AlexZinkM/unified-wallet/internal/model"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// Manager runs the wallet lifecycle: create, import, unlock, lock and clear.
// It owns the single Session of the installation and hands out signing
// capability only while unlocked.
//
// Passwords are []byte for security (caller should zero them after use).
type Manager struct {
	store         *Store
	log           *zap.Logger
	mnemonicWords int
	autoLock      time.Duration

	mu      sync.RWMutex
	session *Session

	timerMu sync.Mutex
	timer   *time.Timer
	epoch   uint64
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. Defaults to zap.NewNop.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithMnemonicWords sets the length of generated mnemonics (12 or 24).
func WithMnemonicWords(n int) Option {
	return func(m *Manager) { m.mnemonicWords = n }
}

// WithAutoLock locks the wallet after d without signing activity. Zero disables it.
func WithAutoLock(d time.Duration) Option {
	return func(m *Manager) { m.autoLock = d }
}

// NewManager creates a Manager over store. The wallet starts locked (or
// uninitialized when nothing is stored).
func NewManager(store *Store, opts ...Option) *Manager {
	m := &Manager{
		store:         store,
		log:           zap.NewNop(),
		mnemonicWords: 12,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State reports the current lifecycle state.
func (m *Manager) State(ctx context.Context) (State, error) {
	m.mu.RLock()
	unlocked := m.session != nil
	m.mu.RUnlock()
	if unlocked {
		return StateUnlocked, nil
	}

	w, err := m.store.Load(ctx)
	if err != nil {
		return "", err
	}
	if w == nil {
		return StateUninitialized, nil
	}
	return StateLocked, nil
}

// IsUnlocked reports whether a session is live.
func (m *Manager) IsUnlocked() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session != nil
}

// Session returns the live session or model.ErrWalletLocked.
func (m *Manager) Session() (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return nil, model.ErrWalletLocked
	}
	return m.session, nil
}

// Create generates a new mnemonic, stores both chain keys encrypted under
// password and unlocks. The mnemonic is returned only here and never stored;
// the caller must show it to the user for backup.
func (m *Manager) Create(ctx context.Context, password []byte) (string, *Session, error) {
	if len(password) == 0 {
		return "", nil, model.ErrEmptyPassword
	}

	mnemonic, err := keys.GenerateMnemonicWords(m.mnemonicWords)
	if err != nil {
		return "", nil, err
	}

	k, err := keys.DeriveFromMnemonic(mnemonic)
	if err != nil {
		return "", nil, fmt.Errorf("failed to derive keys: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.replaceLocked(ctx, k, password)
	if err != nil {
		return "", nil, err
	}

	m.log.Info("wallet created",
		zap.String("solana", s.publicKeys.Solana),
		zap.String("ethereum", s.publicKeys.Ethereum))
	return mnemonic, s, nil
}

// Import restores a wallet from a user-supplied mnemonic, overwriting any
// stored wallet, and unlocks it.
func (m *Manager) Import(ctx context.Context, mnemonic string, password []byte) (*Session, error) {
	if len(password) == 0 {
		return nil, model.ErrEmptyPassword
	}

	k, err := keys.DeriveFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.replaceLocked(ctx, k, password)
	if err != nil {
		return nil, err
	}

	m.log.Info("wallet imported from mnemonic",
		zap.String("solana", s.publicKeys.Solana),
		zap.String("ethereum", s.publicKeys.Ethereum))
	return s, nil
}

// ImportPrivateKey restores a Solana-only wallet from a raw 64-byte secret key
// given as comma-separated numbers. The stored Ethereum blob encrypts an empty
// key, so Ethereum signing fails with model.ErrChainUnavailable.
func (m *Manager) ImportPrivateKey(ctx context.Context, secret string, password []byte) (*Session, error) {
	if len(password) == 0 {
		return nil, model.ErrEmptyPassword
	}

	sol, err := keys.ParseSolanaSecretKey(secret)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.replaceLocked(ctx, &keys.Unified{Solana: sol}, password)
	if err != nil {
		return nil, err
	}

	m.log.Info("wallet imported from private key", zap.String("solana", s.publicKeys.Solana))
	return s, nil
}

// Unlock decrypts the stored wallet with password and starts a session.
// Any existing session is discarded first, so a failed attempt leaves the
// wallet locked. There is no retry or backoff here.
func (m *Manager) Unlock(ctx context.Context, password []byte) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dropSessionLocked()

	w, err := m.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, model.ErrNoWalletFound
	}

	k, err := decryptWallet(w, password)
	if err != nil {
		m.log.Warn("unlock failed", zap.Error(err))
		return nil, err
	}

	s := m.installLocked(k)
	m.log.Info("wallet unlocked", zap.String("solana", s.publicKeys.Solana))
	return s, nil
}

// Lock discards the session. Stored data is untouched.
func (m *Manager) Lock() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		m.dropSessionLocked()
		m.log.Info("wallet locked")
	}
}

// Clear deletes the stored wallet and discards the session.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dropSessionLocked()
	if err := m.store.Clear(ctx); err != nil {
		return err
	}

	m.log.Info("wallet cleared")
	return nil
}

// ChangePassword re-encrypts both chain keys under newPassword with fresh
// salts and IVs. The current session, if any, stays as it is.
func (m *Manager) ChangePassword(ctx context.Context, oldPassword, newPassword []byte) error {
	if len(newPassword) == 0 {
		return model.ErrEmptyPassword
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	w, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	if w == nil {
		return model.ErrNoWalletFound
	}

	k, err := decryptWallet(w, oldPassword)
	if err != nil {
		return err
	}
	defer k.Wipe()

	if err := m.persist(ctx, k, newPassword); err != nil {
		return err
	}

	m.log.Info("wallet password changed")
	return nil
}

// WithSolanaKey runs fn with the live Solana key. fn must not retain the key.
// Fails with model.ErrWalletLocked when no session is live. Lock waits for fn.
func (m *Manager) WithSolanaKey(fn func(key solana.PrivateKey) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return model.ErrWalletLocked
	}
	m.touch()
	return fn(m.session.keys.Solana.PrivateKey)
}

// WithEthereumKey runs fn with the live Ethereum key. fn must not retain the key.
func (m *Manager) WithEthereumKey(fn func(key *ecdsa.PrivateKey) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return model.ErrWalletLocked
	}
	if m.session.keys.Ethereum == nil {
		return model.ErrChainUnavailable
	}
	m.touch()
	return fn(m.session.keys.Ethereum.PrivateKey)
}

// replaceLocked persists k under password and only then installs it as the
// session, so a crash cannot leave an unlocked wallet with nothing stored.
func (m *Manager) replaceLocked(ctx context.Context, k *keys.Unified, password []byte) (*Session, error) {
	if err := m.persist(ctx, k, password); err != nil {
		k.Wipe()
		return nil, err
	}
	m.dropSessionLocked()
	return m.installLocked(k), nil
}

func (m *Manager) persist(ctx context.Context, k *keys.Unified, password []byte) error {
	solBlob, err := crypto.Encrypt(k.Solana.Bytes(), password)
	if err != nil {
		return fmt.Errorf("failed to encrypt solana key: %w", err)
	}

	var ethPlain []byte
	if k.Ethereum != nil {
		ethPlain = k.Ethereum.Bytes()
		defer clear(ethPlain)
	}
	ethBlob, err := crypto.Encrypt(ethPlain, password)
	if err != nil {
		return fmt.Errorf("failed to encrypt ethereum key: %w", err)
	}

	return m.store.Save(ctx, &model.EncryptedWallet{Solana: solBlob, Ethereum: ethBlob})
}

func decryptWallet(w *model.EncryptedWallet, password []byte) (*keys.Unified, error) {
	solPlain, err := crypto.Decrypt(w.Solana, password)
	if err != nil {
		return nil, err
	}
	defer clear(solPlain)

	sol, err := keys.SolanaKeypairFromBytes(solPlain)
	if err != nil {
		return nil, fmt.Errorf("failed to restore solana key: %w", err)
	}

	ethPlain, err := crypto.Decrypt(w.Ethereum, password)
	if err != nil {
		sol.Wipe()
		return nil, err
	}
	defer clear(ethPlain)

	// Empty for wallets imported from a raw Solana key.
	if len(ethPlain) == 0 {
		return &keys.Unified{Solana: sol}, nil
	}

	eth, err := keys.EthereumKeypairFromBytes(ethPlain)
	if err != nil {
		sol.Wipe()
		return nil, fmt.Errorf("failed to restore ethereum key: %w", err)
	}
	return &keys.Unified{Solana: sol, Ethereum: eth}, nil
}

func (m *Manager) installLocked(k *keys.Unified) *Session {
	m.session = newSession(k)
	m.armTimer()
	return m.session
}

func (m *Manager) dropSessionLocked() {
	m.stopTimer()
	if m.session != nil {
		m.session.destroy()
		m.session = nil
	}
}
