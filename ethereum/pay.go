package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/AlexZinkM/unified-wallet/internal/common"
	"github.com/AlexZinkM/unified-wallet/internal/model"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// SignMessage signs msg the personal_sign way (EIP-191 prefix) and returns the
// 65-byte 0x-hex signature with V in {27, 28}.
func (a *Adapter) SignMessage(msg []byte) (string, error) {
	hash := accounts.TextHash(msg)

	var sig []byte
	err := a.keys.WithEthereumKey(func(key *ecdsa.PrivateKey) error {
		var err error
		sig, err = crypto.Sign(hash, key)
		return err
	})
	if err != nil {
		return "", err
	}

	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}

// SignTransaction builds and signs an EIP-1559 transaction and returns the
// 0x-hex encoding accepted by eth_sendRawTransaction.
func (a *Adapter) SignTransaction(ctx context.Context, req model.TxRequest) (string, error) {
	tx, err := a.signedTransaction(ctx, req)
	if err != nil {
		return "", err
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %w", err)
	}
	return hexutil.Encode(raw), nil
}

// SendTransaction builds, signs and broadcasts a transaction and returns its hash.
func (a *Adapter) SendTransaction(ctx context.Context, req model.TxRequest) (string, error) {
	if err := a.requireRPC(); err != nil {
		return "", err
	}

	tx, err := a.signedTransaction(ctx, req)
	if err != nil {
		return "", err
	}

	if err := a.rpc.SendTransaction(ctx, tx); err != nil {
		return "", err
	}

	txHash := tx.Hash().Hex()
	a.log.Info("transaction sent",
		zap.String("tx_hash", txHash),
		zap.Uint64("nonce", tx.Nonce()))
	return txHash, nil
}

// SendRawTransaction broadcasts a 0x-hex transaction produced by
// SignTransaction and returns its hash. Transactions for another chain id are
// rejected.
func (a *Adapter) SendRawTransaction(ctx context.Context, signedTx string) (string, error) {
	raw, err := hexutil.Decode(signedTx)
	if err != nil {
		return "", fmt.Errorf("%w: invalid hex transaction: %w", model.ErrInvalidTransaction, err)
	}
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidTransaction, err)
	}
	if tx.ChainId().Cmp(a.chainID) != 0 {
		return "", fmt.Errorf("%w: chain id %s, want %s", model.ErrInvalidTransaction, tx.ChainId(), a.chainID)
	}
	from, err := types.Sender(types.LatestSignerForChainID(a.chainID), tx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidTransaction, err)
	}

	if err := a.requireRPC(); err != nil {
		return "", err
	}

	if err := a.rpc.SendTransaction(ctx, tx); err != nil {
		return "", err
	}

	txHash := tx.Hash().Hex()
	a.log.Info("signed transaction broadcast",
		zap.String("tx_hash", txHash),
		zap.String("from", from.Hex()),
		zap.Uint64("nonce", tx.Nonce()))
	return txHash, nil
}

func (a *Adapter) signedTransaction(ctx context.Context, req model.TxRequest) (*types.Transaction, error) {
	r, ok := req.(*model.EthereumTxRequest)
	if !ok {
		return nil, fmt.Errorf("%w: expected an ethereum request, got %T", model.ErrInvalidTransaction, req)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	from, err := a.owner()
	if err != nil {
		return nil, err
	}

	// Node lookups happen before the key is borrowed so Lock never waits on RPC.
	unsigned, err := a.buildTransaction(ctx, r, from)
	if err != nil {
		return nil, err
	}

	signer := types.LatestSignerForChainID(a.chainID)
	var signed *types.Transaction
	err = a.keys.WithEthereumKey(func(key *ecdsa.PrivateKey) error {
		if crypto.PubkeyToAddress(key.PublicKey) != from {
			return fmt.Errorf("private key does not match address")
		}
		var err error
		signed, err = types.SignTx(unsigned, signer, key)
		if err != nil {
			return fmt.Errorf("failed to sign transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return signed, nil
}

func (a *Adapter) buildTransaction(ctx context.Context, r *model.EthereumTxRequest, from ethcommon.Address) (*types.Transaction, error) {
	if !ethcommon.IsHexAddress(r.To) {
		return nil, fmt.Errorf("%w: invalid to address", model.ErrInvalidTransaction)
	}
	to := ethcommon.HexToAddress(r.To)

	value, err := common.ETHToWei(r.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid value: %w", model.ErrInvalidTransaction, err)
	}

	var data []byte
	if r.Data != "" {
		if data, err = hexutil.Decode(r.Data); err != nil {
			return nil, fmt.Errorf("%w: invalid data: %w", model.ErrInvalidTransaction, err)
		}
	}

	maxFee, tip, err := a.fees(ctx, r)
	if err != nil {
		return nil, err
	}

	var nonce uint64
	if r.Nonce != nil {
		nonce = *r.Nonce
	} else {
		if err := a.requireRPC(); err != nil {
			return nil, err
		}
		if nonce, err = a.rpc.PendingNonce(ctx, from); err != nil {
			return nil, err
		}
	}

	var gas uint64
	if r.GasLimit != nil {
		gas = *r.GasLimit
	} else {
		if err := a.requireRPC(); err != nil {
			return nil, err
		}
		gas, err = a.rpc.EstimateGas(ctx, ethereum.CallMsg{
			From:      from,
			To:        &to,
			Value:     value,
			Data:      data,
			GasFeeCap: maxFee,
			GasTipCap: tip,
		})
		if err != nil {
			return nil, err
		}
	}

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   a.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: maxFee,
		Gas:       gas,
		To:        &to,
		Value:     value,
		Data:      data,
	}), nil
}

// fees returns the request's fee caps, asking the node for any that are missing.
func (a *Adapter) fees(ctx context.Context, r *model.EthereumTxRequest) (maxFee, tip *big.Int, err error) {
	if r.MaxFeePerGas != nil {
		if maxFee, err = common.ParseWei(*r.MaxFeePerGas); err != nil {
			return nil, nil, fmt.Errorf("%w: maxFeePerGas: %w", model.ErrInvalidTransaction, err)
		}
	}
	if r.MaxPriorityFeePerGas != nil {
		if tip, err = common.ParseWei(*r.MaxPriorityFeePerGas); err != nil {
			return nil, nil, fmt.Errorf("%w: maxPriorityFeePerGas: %w", model.ErrInvalidTransaction, err)
		}
	}

	if maxFee == nil || tip == nil {
		if err := a.requireRPC(); err != nil {
			return nil, nil, err
		}
		suggestedMax, suggestedTip, err := a.rpc.SuggestFees(ctx)
		if err != nil {
			return nil, nil, err
		}
		if maxFee == nil {
			maxFee = suggestedMax
		}
		if tip == nil {
			tip = suggestedTip
		}
	}

	if tip.Cmp(maxFee) > 0 {
		return nil, nil, fmt.Errorf("%w: maxPriorityFeePerGas exceeds maxFeePerGas", model.ErrInvalidTransaction)
	}
	return maxFee, tip, nil
}
