package model

// SignMessageRequest represents request for POST /{chain}/sign
type SignMessageRequest struct {
	Message string `json:"message"` // base64
}

// SignMessageResponse represents response for POST /{chain}/sign
type SignMessageResponse struct {
	Signature string `json:"signature"` // base58 for solana, 0x-hex for ethereum
}

// SignTxResponse represents response for POST /{chain}/transaction/sign
type SignTxResponse struct {
	SignedTx string `json:"signedTx"` // base64 for solana, 0x-hex RLP for ethereum
}

// BroadcastRequest represents request for POST /{chain}/transaction/broadcast.
// SignedTx is the value returned by POST /{chain}/transaction/sign.
type BroadcastRequest struct {
	SignedTx string `json:"signedTx"`
}

// SendTxResponse represents response for POST /{chain}/transaction/send and /broadcast
type SendTxResponse struct {
	TxID string `json:"txId"`
}
