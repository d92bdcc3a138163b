package model

import (
	"fmt"
	"strings"
)

// Chain identifies a supported blockchain.
type Chain string

const (
	ChainSolana   Chain = "solana"
	ChainEthereum Chain = "ethereum"
)

// ParseChain parses a chain name as used in URLs and query strings.
func ParseChain(s string) (Chain, error) {
	switch Chain(strings.ToLower(strings.TrimSpace(s))) {
	case ChainSolana:
		return ChainSolana, nil
	case ChainEthereum:
		return ChainEthereum, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedChain, s)
}

// NewTxRequest returns an empty request of the concrete type for chain, ready
// to be decoded into.
func NewTxRequest(chain Chain) (TxRequest, error) {
	switch chain {
	case ChainSolana:
		return &SolanaTxRequest{}, nil
	case ChainEthereum:
		return &EthereumTxRequest{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedChain, chain)
}

// TxRequest is a chain-specific transaction request. The concrete type is
// either *SolanaTxRequest or *EthereumTxRequest.
type TxRequest interface {
	Chain() Chain
	Validate() error
}

// Solana transfer assets
const (
	TokenSOL  = "SOL"
	TokenUSDC = "USDC"
)

// SolanaTxRequest describes a SOL or USDC (SPL) transfer.
type SolanaTxRequest struct {
	To     string `json:"to"`
	Amount string `json:"amount"` // in Token units, decimal string
	// Token is SOL (default) or USDC.
	Token string `json:"token,omitempty"`
	// RecentBlockhash is optional; the adapter fetches one when empty.
	RecentBlockhash string `json:"recentBlockhash,omitempty"`
}

// Chain implements TxRequest.
func (r *SolanaTxRequest) Chain() Chain { return ChainSolana }

// Validate checks required fields.
func (r *SolanaTxRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidTransaction)
	}
	if r.To == "" {
		return fmt.Errorf("%w: to is required", ErrInvalidTransaction)
	}
	if r.Amount == "" {
		return fmt.Errorf("%w: amount is required", ErrInvalidTransaction)
	}
	switch strings.ToUpper(r.Token) {
	case "", TokenSOL, TokenUSDC:
	default:
		return fmt.Errorf("%w: unsupported token %q", ErrInvalidTransaction, r.Token)
	}
	return nil
}

// Asset returns the normalized token symbol.
func (r *SolanaTxRequest) Asset() string {
	if r.Token == "" {
		return TokenSOL
	}
	return strings.ToUpper(r.Token)
}

// EthereumTxRequest describes an EIP-1559 transaction. Optional numeric fields
// are filled from the node when nil.
type EthereumTxRequest struct {
	To    string `json:"to"`
	Value string `json:"value"`          // ETH, decimal string
	Data  string `json:"data,omitempty"` // 0x-prefixed hex calldata

	Nonce                *uint64 `json:"nonce,omitempty"`
	GasLimit             *uint64 `json:"gasLimit,omitempty"`
	MaxFeePerGas         *string `json:"maxFeePerGas,omitempty"`         // wei
	MaxPriorityFeePerGas *string `json:"maxPriorityFeePerGas,omitempty"` // wei
}

// Chain implements TxRequest.
func (r *EthereumTxRequest) Chain() Chain { return ChainEthereum }

// Validate checks required fields.
func (r *EthereumTxRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidTransaction)
	}
	if r.To == "" {
		return fmt.Errorf("%w: to is required", ErrInvalidTransaction)
	}
	if r.Value == "" {
		return fmt.Errorf("%w: value is required", ErrInvalidTransaction)
	}
	return nil
}
