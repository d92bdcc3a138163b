package model

import "encoding/hex"

const (
	// SaltLen and IVLen are the decoded sizes of EncryptedBlob.Salt and EncryptedBlob.IV.
	SaltLen = 16
	IVLen   = 12
	// TagLen is the AES-GCM authentication tag appended to every ciphertext.
	TagLen = 16
)

// EncryptedBlob is one chain's secret key encrypted at rest.
// All fields are lowercase hex.
type EncryptedBlob struct {
	Salt      string `json:"salt"`
	IV        string `json:"iv"`
	Encrypted string `json:"encrypted"`
}

// Valid reports whether the blob is structurally usable: every field present,
// hex-decodable, salt and iv of fixed length, ciphertext at least one tag long.
func (b *EncryptedBlob) Valid() bool {
	if b == nil || b.Salt == "" || b.IV == "" || b.Encrypted == "" {
		return false
	}
	if !hexLen(b.Salt, SaltLen) || !hexLen(b.IV, IVLen) {
		return false
	}
	ct, err := hex.DecodeString(b.Encrypted)
	return err == nil && len(ct) >= TagLen
}

// EncryptedWallet is the single persisted wallet record.
type EncryptedWallet struct {
	Solana   *EncryptedBlob `json:"solana"`
	Ethereum *EncryptedBlob `json:"ethereum"`
}

// Valid reports whether both chain blobs are present and well-formed.
// Partial records are never usable.
func (w *EncryptedWallet) Valid() bool {
	return w != nil && w.Solana.Valid() && w.Ethereum.Valid()
}

func hexLen(s string, n int) bool {
	b, err := hex.DecodeString(s)
	return err == nil && len(b) == n
}
