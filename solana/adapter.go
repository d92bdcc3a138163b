// Package solana is the Solana chain adapter: balances, message signing and
// SOL/USDC transfers for the unlocked wallet.
package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/unified-wallet/internal/model"
	"github.com/AlexZinkM/unified-wallet/internal/wallet"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// KeySource grants scoped access to the wallet's Solana key.
// *wallet.Manager implements it.
type KeySource interface {
	Session() (*wallet.Session, error)
	WithSolanaKey(fn func(key solana.PrivateKey) error) error
}

// RPC is the subset of the Solana node API the adapter needs.
// *client.SolanaClient implements it.
type RPC interface {
	USDCMint() solana.PublicKey
	GetBalance(ctx context.Context, owner solana.PublicKey) (usdcMicro uint64, solLamports uint64, err error)
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
	AccountExists(ctx context.Context, account solana.PublicKey) (bool, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

// PriceSource quotes USD prices. *client.CoinGeckoClient implements it.
type PriceSource interface {
	GetUSDRate(ctx context.Context, coinID string) (string, error)
}

// Adapter implements the Solana side of the chain registry.
type Adapter struct {
	keys   KeySource
	rpc    RPC
	prices PriceSource
	log    *zap.Logger
}

// NewAdapter creates a Solana adapter. rpc and prices may be nil for
// offline signing; operations that need them then fail.
func NewAdapter(keys KeySource, rpc RPC, prices PriceSource, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		keys:   keys,
		rpc:    rpc,
		prices: prices,
		log:    log.With(zap.String("chain", string(model.ChainSolana))),
	}
}

// Chain implements chains.Adapter.
func (a *Adapter) Chain() model.Chain {
	return model.ChainSolana
}

// PublicKey returns the base58 address of the unlocked wallet.
func (a *Adapter) PublicKey() (string, error) {
	s, err := a.keys.Session()
	if err != nil {
		return "", err
	}
	return s.PublicKeys().Solana, nil
}

func (a *Adapter) owner() (solana.PublicKey, error) {
	address, err := a.PublicKey()
	if err != nil {
		return solana.PublicKey{}, err
	}
	return solana.PublicKeyFromBase58(address)
}

func (a *Adapter) requireRPC() error {
	if a.rpc == nil {
		return fmt.Errorf("solana rpc is not configured")
	}
	return nil
}
