package solana

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/AlexZinkM/unified-wallet/internal/common"
	"github.com/AlexZinkM/unified-wallet/internal/model"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"go.uber.org/zap"
)

// SignMessage signs msg with the wallet's ed25519 key and returns the base58 signature.
func (a *Adapter) SignMessage(msg []byte) (string, error) {
	var sig solana.Signature
	err := a.keys.WithSolanaKey(func(key solana.PrivateKey) error {
		var err error
		sig, err = key.Sign(msg)
		return err
	})
	if err != nil {
		return "", err
	}
	return sig.String(), nil
}

// SignTransaction builds and signs a transfer and returns it base64-encoded,
// ready for SendRawTransaction.
func (a *Adapter) SignTransaction(ctx context.Context, req model.TxRequest) (string, error) {
	tx, err := a.signedTransaction(ctx, req)
	if err != nil {
		return "", err
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to serialize transaction: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// SendTransaction builds, signs and submits a transfer and returns its signature.
func (a *Adapter) SendTransaction(ctx context.Context, req model.TxRequest) (string, error) {
	if err := a.requireRPC(); err != nil {
		return "", err
	}

	tx, err := a.signedTransaction(ctx, req)
	if err != nil {
		return "", err
	}

	sig, err := a.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", err
	}

	a.log.Info("transaction sent", zap.String("signature", sig.String()))
	return sig.String(), nil
}

// SendRawTransaction submits a base64 transaction produced by SignTransaction
// (or any other fully signed transaction) and returns its signature.
func (a *Adapter) SendRawTransaction(ctx context.Context, signedTx string) (string, error) {
	tx, err := solana.TransactionFromBase64(signedTx)
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64 transaction: %w", model.ErrInvalidTransaction, err)
	}
	if len(tx.Signatures) == 0 {
		return "", fmt.Errorf("%w: transaction is not signed", model.ErrInvalidTransaction)
	}
	if err := tx.VerifySignatures(); err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidTransaction, err)
	}

	if err := a.requireRPC(); err != nil {
		return "", err
	}

	sig, err := a.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", err
	}

	a.log.Info("signed transaction broadcast", zap.String("signature", sig.String()))
	return sig.String(), nil
}

func (a *Adapter) signedTransaction(ctx context.Context, req model.TxRequest) (*solana.Transaction, error) {
	r, ok := req.(*model.SolanaTxRequest)
	if !ok {
		return nil, fmt.Errorf("%w: expected a solana request, got %T", model.ErrInvalidTransaction, req)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	from, err := a.owner()
	if err != nil {
		return nil, err
	}

	// Network lookups happen before the key is borrowed so Lock never waits on RPC.
	tx, err := a.buildTransaction(ctx, r, from)
	if err != nil {
		return nil, err
	}

	err = a.keys.WithSolanaKey(func(key solana.PrivateKey) error {
		if !key.PublicKey().Equals(from) {
			return fmt.Errorf("private key does not match address")
		}
		_, err := tx.Sign(func(pub solana.PublicKey) *solana.PrivateKey {
			if key.PublicKey().Equals(pub) {
				return &key
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to sign transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (a *Adapter) buildTransaction(ctx context.Context, r *model.SolanaTxRequest, from solana.PublicKey) (*solana.Transaction, error) {
	toPubkey, err := solana.PublicKeyFromBase58(r.To)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid to address: %w", model.ErrInvalidTransaction, err)
	}

	blockhash, err := a.blockhash(ctx, r.RecentBlockhash)
	if err != nil {
		return nil, err
	}

	var instructions []solana.Instruction
	switch r.Asset() {
	case model.TokenUSDC:
		instructions, err = a.usdcInstructions(ctx, r.Amount, from, toPubkey)
	default:
		instructions, err = solInstructions(r.Amount, from, toPubkey)
	}
	if err != nil {
		return nil, err
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(from))
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return tx, nil
}

func (a *Adapter) blockhash(ctx context.Context, given string) (solana.Hash, error) {
	if given != "" {
		h, err := solana.HashFromBase58(given)
		if err != nil {
			return solana.Hash{}, fmt.Errorf("%w: invalid recent blockhash: %w", model.ErrInvalidTransaction, err)
		}
		return h, nil
	}
	if err := a.requireRPC(); err != nil {
		return solana.Hash{}, err
	}
	return a.rpc.LatestBlockhash(ctx)
}

func solInstructions(amount string, from, to solana.PublicKey) ([]solana.Instruction, error) {
	// Convert SOL to lamports (1 SOL = 1,000,000,000 lamports)
	lamports, err := common.SOLToLamports(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount: %w", model.ErrInvalidTransaction, err)
	}
	if lamports == 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidTransaction)
	}

	return []solana.Instruction{
		system.NewTransferInstruction(lamports, from, to).Build(),
	}, nil
}

// usdcInstructions transfers USDC between associated token accounts, creating
// the recipient's account (paid by the sender) when it does not exist yet.
func (a *Adapter) usdcInstructions(ctx context.Context, amount string, from, to solana.PublicKey) ([]solana.Instruction, error) {
	if err := a.requireRPC(); err != nil {
		return nil, err
	}

	micro, err := common.USDCToMicro(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount: %w", model.ErrInvalidTransaction, err)
	}
	if micro == 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidTransaction)
	}

	mint := a.rpc.USDCMint()
	sourceTokenAccount, _, err := solana.FindAssociatedTokenAddress(from, mint)
	if err != nil {
		return nil, fmt.Errorf("failed to find source token account address: %w", err)
	}
	destTokenAccount, _, err := solana.FindAssociatedTokenAddress(to, mint)
	if err != nil {
		return nil, fmt.Errorf("failed to find destination token account: %w", err)
	}

	exists, err := a.rpc.AccountExists(ctx, destTokenAccount)
	if err != nil {
		return nil, err
	}

	var instructions []solana.Instruction
	if !exists {
		instructions = append(instructions, associatedtokenaccount.NewCreateInstruction(
			from, // payer
			to,   // owner
			mint,
		).Build())
	}

	instructions = append(instructions, token.NewTransferCheckedInstruction(
		micro,
		common.USDCDecimals,
		sourceTokenAccount,
		mint,
		destTokenAccount,
		from,
		[]solana.PublicKey{},
	).Build())
	return instructions, nil
}
