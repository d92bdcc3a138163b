package keys

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/AlexZinkM/unified-wallet/internal/model"
)

// ParseSolanaSecretKey imports a Solana keypair from its 64-byte secret key
// written as comma-separated decimal byte values, e.g. "12, 250, 3, ...".
// Whitespace and surrounding brackets are ignored. Anything else fails with
// model.ErrInvalidKeyFormat.
func ParseSolanaSecretKey(s string) (*SolanaKeypair, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	cleaned = strings.TrimSuffix(strings.TrimPrefix(cleaned, "["), "]")

	parts := strings.Split(cleaned, ",")
	if len(parts) != SolanaSecretKeyLen {
		return nil, fmt.Errorf("%w: expected %d numbers, got %d", model.ErrInvalidKeyFormat, SolanaSecretKeyLen, len(parts))
	}

	secret := make([]byte, SolanaSecretKeyLen)
	defer clear(secret)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d is not a byte", model.ErrInvalidKeyFormat, i)
		}
		secret[i] = byte(n)
	}

	return SolanaKeypairFromBytes(secret)
}
