package model

// PasswordRequest represents request for POST /wallet/create and /wallet/unlock
type PasswordRequest struct {
	Password string `json:"password"`
}

// ImportRequest represents request for POST /wallet/import
type ImportRequest struct {
	Mnemonic string `json:"mnemonic"`
	Password string `json:"password"`
}

// ImportKeyRequest represents request for POST /wallet/import-key.
// PrivateKey is 64 comma-separated byte values.
type ImportKeyRequest struct {
	PrivateKey string `json:"privateKey"`
	Password   string `json:"password"`
}

// ChangePasswordRequest represents request for POST /wallet/password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// PublicKeys holds the per-chain public identifiers of an unlocked wallet.
type PublicKeys struct {
	Solana   string `json:"solana,omitempty"`
	Ethereum string `json:"ethereum,omitempty"`
}

// CreateResponse represents response for POST /wallet/create.
// Mnemonic is returned exactly once and never stored.
type CreateResponse struct {
	Mnemonic   string     `json:"mnemonic"`
	PublicKeys PublicKeys `json:"publicKeys"`
}

// SessionResponse represents response for import and unlock endpoints
type SessionResponse struct {
	PublicKeys PublicKeys `json:"publicKeys"`
}

// StatusResponse represents response for GET /wallet/status
type StatusResponse struct {
	State      string      `json:"state"`
	IsUnlocked bool        `json:"isUnlocked"`
	PublicKeys *PublicKeys `json:"publicKeys,omitempty"`
}

// QRResponse represents response for GET /wallet/qr
type QRResponse struct {
	Chain   Chain  `json:"chain"`
	Address string `json:"address"`
	QR      string `json:"QR"` // base64 PNG
}

// SuccessResponse is returned by endpoints without a payload
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
