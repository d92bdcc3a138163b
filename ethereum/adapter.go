// Package ethereum is the Ethereum chain adapter: balances, personal_sign
// messages and EIP-1559 transactions for the unlocked wallet.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/AlexZinkM/unified-wallet/internal/model"
	"github.com/AlexZinkM/unified-wallet/internal/wallet"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// KeySource grants scoped access to the wallet's Ethereum key.
// *wallet.Manager implements it.
type KeySource interface {
	Session() (*wallet.Session, error)
	WithEthereumKey(fn func(key *ecdsa.PrivateKey) error) error
}

// RPC is the subset of the Ethereum node API the adapter needs.
// *client.EthereumClient implements it.
type RPC interface {
	GetBalance(ctx context.Context, owner common.Address) (wei *big.Int, usdcMicro *big.Int, err error)
	PendingNonce(ctx context.Context, from common.Address) (uint64, error)
	SuggestFees(ctx context.Context) (maxFee, tip *big.Int, err error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// PriceSource quotes USD prices. *client.CoinGeckoClient implements it.
type PriceSource interface {
	GetUSDRate(ctx context.Context, coinID string) (string, error)
}

// Adapter implements the Ethereum side of the chain registry.
type Adapter struct {
	keys    KeySource
	rpc     RPC
	prices  PriceSource
	chainID *big.Int
	log     *zap.Logger
}

// NewAdapter creates an Ethereum adapter signing for chainID. rpc and prices
// may be nil for offline signing of fully specified transactions.
func NewAdapter(keys KeySource, rpc RPC, prices PriceSource, chainID int64, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		keys:    keys,
		rpc:     rpc,
		prices:  prices,
		chainID: big.NewInt(chainID),
		log:     log.With(zap.String("chain", string(model.ChainEthereum))),
	}
}

// Chain implements chains.Adapter.
func (a *Adapter) Chain() model.Chain {
	return model.ChainEthereum
}

// PublicKey returns the checksummed address of the unlocked wallet. Wallets
// imported from a raw Solana key have none.
func (a *Adapter) PublicKey() (string, error) {
	s, err := a.keys.Session()
	if err != nil {
		return "", err
	}
	address := s.PublicKeys().Ethereum
	if address == "" {
		return "", model.ErrChainUnavailable
	}
	return address, nil
}

func (a *Adapter) owner() (common.Address, error) {
	address, err := a.PublicKey()
	if err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(address), nil
}

func (a *Adapter) requireRPC() error {
	if a.rpc == nil {
		return fmt.Errorf("ethereum rpc is not configured")
	}
	return nil
}
