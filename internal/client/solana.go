package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const (
	// USDCMintMainnet is the USDC mint on Solana mainnet (does not exist on devnet/testnet).
	USDCMintMainnet = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	// USDCMintDevnet is Circle's USDC mint on devnet.
	USDCMintDevnet = "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU"
)

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient     *rpc.Client
	rpcURL        string
	mintPublicKey solana.PublicKey
}

// NewSolanaClient creates a new Solana client. usdcMint selects the SPL token
// reported and transferred as USDC.
func NewSolanaClient(rpcURL, usdcMint string) (*SolanaClient, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("solana rpc url is empty")
	}
	mintPubKey, err := solana.PublicKeyFromBase58(usdcMint)
	if err != nil {
		return nil, fmt.Errorf("invalid USDC mint address: %w", err)
	}

	return &SolanaClient{
		rpcClient:     rpc.New(rpcURL),
		rpcURL:        rpcURL,
		mintPublicKey: mintPubKey,
	}, nil
}

// USDCMint returns the configured USDC mint
func (c *SolanaClient) USDCMint() solana.PublicKey {
	return c.mintPublicKey
}

// GetBalance gets USDC (micro units) and SOL (lamports) balance for owner.
// An owner without a USDC token account has a zero USDC balance.
func (c *SolanaClient) GetBalance(ctx context.Context, owner solana.PublicKey) (usdcMicro uint64, solLamports uint64, err error) {
	solLamports, err = c.getSOLBalanceLamports(ctx, owner)
	if err != nil {
		return 0, 0, err
	}

	usdcMicro, err = c.getUSDCBalanceMicro(ctx, owner)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get USDC balance: %w", err)
	}

	return usdcMicro, solLamports, nil
}

// getSOLBalanceLamports gets SOL balance in lamports
func (c *SolanaClient) getSOLBalanceLamports(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetBalance(ctx, owner, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return balance.Value, nil
}

// getUSDCBalanceMicro gets USDC balance in micro units (10^-6 USDC)
func (c *SolanaClient) getUSDCBalanceMicro(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	ataAddress, _, err := solana.FindAssociatedTokenAddress(owner, c.mintPublicKey)
	if err != nil {
		return 0, fmt.Errorf("failed to find associated token account address: %w", err)
	}

	balance, err := c.rpcClient.GetTokenAccountBalance(ctx, ataAddress, rpc.CommitmentConfirmed)
	if err != nil {
		if isATANotFoundError(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get token account balance: %w", err)
	}

	if balance.Value == nil {
		return 0, nil
	}

	amount, err := strconv.ParseUint(balance.Value.Amount, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse USDC balance amount: %w", err)
	}

	return amount, nil
}

// LatestBlockhash returns a finalized blockhash for new transactions.
// GetRecentBlockhash is deprecated, GetLatestBlockhash replaces it.
func (c *SolanaClient) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}
	return recent.Value.Blockhash, nil
}

// AccountExists reports whether an account (e.g. a token account) exists on chain.
func (c *SolanaClient) AccountExists(ctx context.Context, account solana.PublicKey) (bool, error) {
	info, err := c.rpcClient.GetAccountInfo(ctx, account)
	if err != nil {
		if isATANotFoundError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get account info: %w", err)
	}
	return info != nil && info.Value != nil, nil
}

// SendTransaction submits a signed transaction with preflight checks.
func (c *SolanaClient) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	sig, err := c.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false, // Transaction validation before node
			PreflightCommitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}
	return sig, nil
}

// isATANotFoundError checks if error indicates that token account doesn't exist
func isATANotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, rpc.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "could not find account") ||
		strings.Contains(errStr, "not found")
}
