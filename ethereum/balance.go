package ethereum

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/unified-wallet/internal/client"
	"github.com/AlexZinkM/unified-wallet/internal/common"
	"github.com/AlexZinkM/unified-wallet/internal/model"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// GetBalances gets ETH (and USDC when configured) balance of address, or of
// the unlocked wallet when address is empty.
func (a *Adapter) GetBalances(ctx context.Context, address string) (*model.BalanceResponse, error) {
	if err := a.requireRPC(); err != nil {
		return nil, err
	}

	var owner ethcommon.Address
	if address == "" {
		var err error
		if owner, err = a.owner(); err != nil {
			return nil, err
		}
	} else {
		if !ethcommon.IsHexAddress(address) {
			return nil, fmt.Errorf("invalid Ethereum address format")
		}
		owner = ethcommon.HexToAddress(address)
	}

	wei, usdcMicro, err := a.rpc.GetBalance(ctx, owner)
	if err != nil {
		return nil, err
	}

	eth := common.WeiToETH(wei)
	resp := &model.BalanceResponse{
		Chain:    model.ChainEthereum,
		Address:  owner.Hex(),
		Balances: []model.TokenBalance{{Symbol: "ETH", Amount: eth, Decimals: common.ETHDecimals}},
	}
	if usdcMicro != nil {
		resp.Balances = append(resp.Balances, model.TokenBalance{
			Symbol:   model.TokenUSDC,
			Amount:   common.FormatUnits(usdcMicro, common.USDCDecimals),
			Decimals: common.USDCDecimals,
		})
	}

	if a.prices != nil {
		rate, err := a.prices.GetUSDRate(ctx, client.CoinEthereum)
		if err != nil {
			a.log.Warn("failed to get ETH/USD rate", zap.Error(err))
		} else {
			resp.USDValue = common.USDValue(eth, rate)
		}
	}
	return resp, nil
}
