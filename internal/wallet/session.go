package wallet

import (
	"github.com/AlexZinkM/unified-wallet/internal/keys"
	"github.com/AlexZinkM/unified-wallet/internal/model"
)

// State is the lifecycle state of the installation's wallet.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLocked        State = "locked"
	StateUnlocked      State = "unlocked"
)

// Session is the live, unlocked wallet. It exists only in memory and is owned
// by the Manager; collaborators reach key material only through the Manager's
// WithSolanaKey and WithEthereumKey.
type Session struct {
	keys       *keys.Unified
	publicKeys model.PublicKeys
}

func newSession(k *keys.Unified) *Session {
	pk := model.PublicKeys{Solana: k.Solana.PublicKey().String()}
	if k.Ethereum != nil {
		pk.Ethereum = k.Ethereum.Address.Hex()
	}
	return &Session{keys: k, publicKeys: pk}
}

// PublicKeys returns the per-chain public identifiers.
// Ethereum is empty for a wallet imported from a raw Solana key.
func (s *Session) PublicKeys() model.PublicKeys {
	return s.publicKeys
}

// destroy wipes the key material. Guarded by Manager.mu.
func (s *Session) destroy() {
	s.keys.Wipe()
	s.keys = nil
}
