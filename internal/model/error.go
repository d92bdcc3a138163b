package model

import "errors"

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Wallet error kinds. Match with errors.Is.
var (
	ErrInvalidMnemonic    = errors.New("invalid mnemonic")
	ErrInvalidKeyFormat   = errors.New("invalid private key format")
	ErrNoWalletFound      = errors.New("no wallet found")
	ErrWrongPassword      = errors.New("invalid password")
	ErrStorageFailure     = errors.New("storage failure")
	ErrWalletLocked       = errors.New("wallet is locked")
	ErrChainUnavailable   = errors.New("chain key not available in this wallet")
	ErrInvalidTransaction = errors.New("invalid transaction request")
	ErrEmptyPassword      = errors.New("password cannot be empty")
	ErrUnsupportedChain   = errors.New("unsupported chain")
	ErrSendCooldown       = errors.New("send cooldown active")
)

// ErrorCode maps a wallet error to the stable code returned to API clients.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidMnemonic):
		return "INVALID_MNEMONIC"
	case errors.Is(err, ErrInvalidKeyFormat):
		return "INVALID_KEY_FORMAT"
	case errors.Is(err, ErrNoWalletFound):
		return "NO_WALLET_FOUND"
	case errors.Is(err, ErrWrongPassword):
		return "WRONG_PASSWORD"
	case errors.Is(err, ErrStorageFailure):
		return "STORAGE_FAILURE"
	case errors.Is(err, ErrWalletLocked):
		return "WALLET_LOCKED"
	case errors.Is(err, ErrChainUnavailable):
		return "CHAIN_UNAVAILABLE"
	case errors.Is(err, ErrInvalidTransaction):
		return "INVALID_TRANSACTION"
	case errors.Is(err, ErrEmptyPassword):
		return "EMPTY_PASSWORD"
	case errors.Is(err, ErrUnsupportedChain):
		return "UNSUPPORTED_CHAIN"
	case errors.Is(err, ErrSendCooldown):
		return "SEND_COOLDOWN"
	}
	return ""
}
