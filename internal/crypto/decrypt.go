package crypto

import (
	"encoding/hex"

	"github.com/AlexZinkM/unified-wallet/internal/model"
)

// Decrypt opens blob with password.
// Every failure, whether a wrong password, a tampered ciphertext or a malformed
// field, returns model.ErrWrongPassword so callers cannot tell them apart.
// Caller should zero the returned plaintext after use.
func Decrypt(blob *model.EncryptedBlob, password []byte) ([]byte, error) {
	if blob == nil {
		return nil, model.ErrWrongPassword
	}

	salt, err := hex.DecodeString(blob.Salt)
	if err != nil || len(salt) != model.SaltLen {
		return nil, model.ErrWrongPassword
	}

	iv, err := hex.DecodeString(blob.IV)
	if err != nil || len(iv) != model.IVLen {
		return nil, model.ErrWrongPassword
	}

	ciphertext, err := hex.DecodeString(blob.Encrypted)
	if err != nil || len(ciphertext) < model.TagLen {
		return nil, model.ErrWrongPassword
	}

	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, model.ErrWrongPassword
	}
	defer clear(key)

	aesGCM, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesGCM.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, model.ErrWrongPassword
	}
	return plaintext, nil
}
