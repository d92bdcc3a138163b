package keys

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"fmt"

	"github.com/AlexZinkM/unified-wallet/internal/model"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
)

const (
	SolanaSecretKeyLen    = ed25519.PrivateKeySize // 32-byte seed + 32-byte public key
	EthereumPrivateKeyLen = 32
)

// SolanaKeypair is a Solana ed25519 keypair.
type SolanaKeypair struct {
	PrivateKey solana.PrivateKey
}

// PublicKey returns the account address.
func (k *SolanaKeypair) PublicKey() solana.PublicKey {
	return k.PrivateKey.PublicKey()
}

// Bytes returns the 64-byte secret key. It aliases the keypair's memory.
func (k *SolanaKeypair) Bytes() []byte {
	return k.PrivateKey
}

// Wipe zeroes the secret key.
func (k *SolanaKeypair) Wipe() {
	if k != nil {
		clear(k.PrivateKey)
	}
}

// EthereumKeypair is a secp256k1 keypair with its checksummed address.
type EthereumKeypair struct {
	PrivateKey *ecdsa.PrivateKey
	Address    common.Address
}

// Bytes returns a copy of the 32-byte private key.
// Caller should zero it after use.
func (k *EthereumKeypair) Bytes() []byte {
	return ethcrypto.FromECDSA(k.PrivateKey)
}

// Wipe zeroes the private scalar.
func (k *EthereumKeypair) Wipe() {
	if k != nil && k.PrivateKey != nil && k.PrivateKey.D != nil {
		k.PrivateKey.D.SetInt64(0)
	}
}

// Unified holds both chain keypairs derived from one seed.
// Ethereum is nil for a wallet imported from a raw Solana key.
type Unified struct {
	Solana   *SolanaKeypair
	Ethereum *EthereumKeypair
}

// Wipe zeroes both keypairs.
func (u *Unified) Wipe() {
	if u == nil {
		return
	}
	u.Solana.Wipe()
	u.Ethereum.Wipe()
}

// SolanaKeypairFromSeed builds a keypair from a 32-byte ed25519 seed.
func SolanaKeypairFromSeed(seed []byte) (*SolanaKeypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: expected %d byte seed, got %d", model.ErrInvalidKeyFormat, ed25519.SeedSize, len(seed))
	}
	return &SolanaKeypair{PrivateKey: solana.PrivateKey(ed25519.NewKeyFromSeed(seed))}, nil
}

// SolanaKeypairFromBytes rebuilds a keypair from a 64-byte secret key and
// checks that its public half matches the seed half.
func SolanaKeypairFromBytes(secret []byte) (*SolanaKeypair, error) {
	if len(secret) != SolanaSecretKeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", model.ErrInvalidKeyFormat, SolanaSecretKeyLen, len(secret))
	}

	kp, err := SolanaKeypairFromSeed(secret[:ed25519.SeedSize])
	if err != nil {
		return nil, err
	}
	if !kp.PublicKey().Equals(solana.PublicKeyFromBytes(secret[ed25519.SeedSize:])) {
		kp.Wipe()
		return nil, fmt.Errorf("%w: public key does not match secret key", model.ErrInvalidKeyFormat)
	}
	return kp, nil
}

// EthereumKeypairFromBytes rebuilds a keypair from a 32-byte private key.
func EthereumKeypairFromBytes(b []byte) (*EthereumKeypair, error) {
	if len(b) != EthereumPrivateKeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", model.ErrInvalidKeyFormat, EthereumPrivateKeyLen, len(b))
	}

	priv, err := ethcrypto.ToECDSA(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidKeyFormat, err)
	}
	return &EthereumKeypair{
		PrivateKey: priv,
		Address:    ethcrypto.PubkeyToAddress(priv.PublicKey),
	}, nil
}
