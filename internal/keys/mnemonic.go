// Package keys turns BIP-39 recovery phrases into the per-chain keypairs the
// wallet holds: a raw-seed ed25519 key for Solana and a BIP-44 secp256k1 key
// for Ethereum.
package keys

import (
	"fmt"
	"strings"

	"github.com/AlexZinkM/unified-wallet/internal/model"

	"github.com/tyler-smith/go-bip39"
)

// SeedSize is the length of a BIP-39 seed in bytes.
const SeedSize = 64

// GenerateMnemonic creates a new 12-word BIP-39 mnemonic.
func GenerateMnemonic() (string, error) {
	return GenerateMnemonicWords(12)
}

// GenerateMnemonicWords creates a new BIP-39 mnemonic of 12 or 24 words.
func GenerateMnemonicWords(words int) (string, error) {
	var bits int
	switch words {
	case 12:
		bits = 128
	case 24:
		bits = 256
	default:
		return "", fmt.Errorf("unsupported mnemonic length: %d words", words)
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// NormalizeMnemonic lowercases the phrase and collapses whitespace. The seed
// is always derived from the normalized phrase, so case does not matter.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}

// ValidateMnemonic checks word count, wordlist membership and checksum.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(NormalizeMnemonic(mnemonic))
}

// MnemonicToSeed derives the 64-byte seed with an empty passphrase.
// Unlike a lenient phrase-to-seed conversion, a typo'd phrase is rejected
// here instead of silently producing an unrecoverable wallet.
func MnemonicToSeed(mnemonic string) ([]byte, error) {
	mnemonic = NormalizeMnemonic(mnemonic)
	if mnemonic == "" || !bip39.IsMnemonicValid(mnemonic) {
		return nil, model.ErrInvalidMnemonic
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidMnemonic, err)
	}
	return seed, nil
}
