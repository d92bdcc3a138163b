package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/AlexZinkM/unified-wallet/internal/model"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2 parameters. Changing any of them makes existing wallets undecryptable.
	pbkdf2Iterations = 100_000
	keyLen           = 32 // AES-256
)

// DeriveKey derives the AES-256 key for password and a 16-byte salt.
// Caller should zero the returned key after use.
func DeriveKey(password, salt []byte) ([]byte, error) {
	if len(salt) != model.SaltLen {
		return nil, fmt.Errorf("invalid salt length: expected %d bytes, got %d", model.SaltLen, len(salt))
	}
	return pbkdf2.Key(password, salt, pbkdf2Iterations, keyLen, sha256.New), nil
}

// Encrypt seals plaintext under password with a fresh random salt and IV.
// password must be []byte for security (caller should zero it after use)
func Encrypt(plaintext, password []byte) (*model.EncryptedBlob, error) {
	// Generate salt and iv, never reused across calls
	salt := make([]byte, model.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	iv := make([]byte, model.IVLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	// Ciphertext carries the GCM tag
	ciphertext := aesGCM.Seal(nil, iv, plaintext, nil)

	return &model.EncryptedBlob{
		Salt:      hex.EncodeToString(salt),
		IV:        hex.EncodeToString(iv),
		Encrypted: hex.EncodeToString(ciphertext),
	}, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
