package keys

import (
	"crypto/ed25519"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// EthereumPath is the BIP-44 path of the wallet's Ethereum account: m/44'/60'/0'/0/0.
var EthereumPath = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 60,
	hdkeychain.HardenedKeyStart + 0,
	0,
	0,
}

// DeriveUnifiedKeypairs derives both chain keypairs from a BIP-39 seed.
//
// Solana uses the first 32 bytes of the seed directly as the ed25519 seed,
// with no HD path. Ethereum uses BIP-32 over the whole seed at EthereumPath.
// Existing wallets depend on this exact asymmetry for recovery.
func DeriveUnifiedKeypairs(seed []byte) (*Unified, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("invalid seed length: expected %d bytes, got %d", SeedSize, len(seed))
	}

	sol, err := SolanaKeypairFromSeed(seed[:ed25519.SeedSize])
	if err != nil {
		return nil, fmt.Errorf("failed to derive solana key: %w", err)
	}

	eth, err := deriveEthereum(seed)
	if err != nil {
		sol.Wipe()
		return nil, fmt.Errorf("failed to derive ethereum key: %w", err)
	}

	return &Unified{Solana: sol, Ethereum: eth}, nil
}

// DeriveFromMnemonic validates mnemonic and derives both chain keypairs.
func DeriveFromMnemonic(mnemonic string) (*Unified, error) {
	seed, err := MnemonicToSeed(mnemonic)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	return DeriveUnifiedKeypairs(seed)
}

func deriveEthereum(seed []byte) (*EthereumKeypair, error) {
	// Network params only affect serialization of extended keys, not derivation.
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	for _, index := range EthereumPath {
		child, err := key.Derive(index)
		key.Zero()
		if err != nil {
			return nil, fmt.Errorf("failed to derive child %d: %w", index, err)
		}
		key = child
	}
	defer key.Zero()

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get private key: %w", err)
	}
	raw := priv.Serialize()
	defer clear(raw)
	priv.Zero()

	return EthereumKeypairFromBytes(raw)
}
