package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/unified-wallet/internal/client"
	"github.com/AlexZinkM/unified-wallet/internal/common"
	"github.com/AlexZinkM/unified-wallet/internal/model"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

// GetBalances gets SOL and USDC balance of address, or of the unlocked wallet
// when address is empty. The USD value of the SOL balance is best effort.
func (a *Adapter) GetBalances(ctx context.Context, address string) (*model.BalanceResponse, error) {
	if err := a.requireRPC(); err != nil {
		return nil, err
	}

	var owner solana.PublicKey
	var err error
	if address == "" {
		owner, err = a.owner()
	} else {
		owner, err = solana.PublicKeyFromBase58(address)
		if err != nil {
			err = fmt.Errorf("invalid Solana address: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}

	// USDC (micro) and SOL (lamports) balance
	usdcMicro, solLamports, err := a.rpc.GetBalance(ctx, owner)
	if err != nil {
		return nil, err
	}

	// Convert to display strings (no float precision loss)
	sol := common.LamportsToSOL(solLamports)
	resp := &model.BalanceResponse{
		Chain:   model.ChainSolana,
		Address: owner.String(),
		Balances: []model.TokenBalance{
			{Symbol: model.TokenSOL, Amount: sol, Decimals: common.SOLDecimals},
			{Symbol: model.TokenUSDC, Amount: common.MicroToUSDC(usdcMicro), Decimals: common.USDCDecimals},
		},
	}

	if a.prices != nil {
		rate, err := a.prices.GetUSDRate(ctx, client.CoinSolana)
		if err != nil {
			a.log.Warn("failed to get SOL/USD rate", zap.Error(err))
		} else {
			resp.USDValue = common.USDValue(sol, rate)
		}
	}
	return resp, nil
}
