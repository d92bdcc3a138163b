package client

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// USDCContractSepolia is Circle's USDC token on the Sepolia testnet.
const USDCContractSepolia = "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"

// ERC-20 ABI for balanceOf
const erc20ABI = `[
	{
		"constant": true,
		"inputs": [{"name": "_owner", "type": "address"}],
		"name": "balanceOf",
		"outputs": [{"name": "balance", "type": "uint256"}],
		"type": "function"
	}
]`

// EthereumClient is a client for working with Ethereum JSON-RPC
type EthereumClient struct {
	client       *ethclient.Client
	rpcURL       string
	erc20        abi.ABI
	usdcContract *common.Address
}

// NewEthereumClient creates a new Ethereum client. The HTTP transport connects
// lazily, so a node being down only fails the first call. usdcContract may be
// empty to skip the USDC balance.
func NewEthereumClient(rpcURL, usdcContract string) (*EthereumClient, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("ethereum rpc url is empty")
	}

	parsedABI, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	c := &EthereumClient{rpcURL: rpcURL, erc20: parsedABI}
	if usdcContract != "" {
		if !common.IsHexAddress(usdcContract) {
			return nil, fmt.Errorf("invalid USDC contract address: %s", usdcContract)
		}
		addr := common.HexToAddress(usdcContract)
		c.usdcContract = &addr
	}

	c.client, err = ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum: %w", err)
	}
	return c, nil
}

// Close releases the RPC connection
func (c *EthereumClient) Close() {
	c.client.Close()
}

// GetBalance returns the ETH balance in wei and the USDC balance in micro
// units (nil when no USDC contract is configured).
func (c *EthereumClient) GetBalance(ctx context.Context, owner common.Address) (wei *big.Int, usdcMicro *big.Int, err error) {
	wei, err = c.client.BalanceAt(ctx, owner, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get ETH balance: %w", err)
	}

	if c.usdcContract == nil {
		return wei, nil, nil
	}
	usdcMicro, err = c.erc20Balance(ctx, *c.usdcContract, owner)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get USDC balance: %w", err)
	}
	return wei, usdcMicro, nil
}

func (c *EthereumClient) erc20Balance(ctx context.Context, contract, owner common.Address) (*big.Int, error) {
	data, err := c.erc20.Pack("balanceOf", owner)
	if err != nil {
		return nil, fmt.Errorf("failed to pack balanceOf: %w", err)
	}

	out, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	values, err := c.erc20.Unpack("balanceOf", out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack balance: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected balanceOf result")
	}
	balance, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf result type %T", values[0])
	}
	return balance, nil
}

// PendingNonce returns the next nonce for from, including pending transactions.
func (c *EthereumClient) PendingNonce(ctx context.Context, from common.Address) (uint64, error) {
	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		return 0, fmt.Errorf("failed to get nonce: %w", err)
	}
	return nonce, nil
}

// SuggestFees returns EIP-1559 fee caps: the suggested tip, and a max fee of
// twice the latest base fee plus the tip.
func (c *EthereumClient) SuggestFees(ctx context.Context) (maxFee, tip *big.Int, err error) {
	tip, err = c.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get gas tip: %w", err)
	}

	head, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get latest header: %w", err)
	}
	baseFee := head.BaseFee
	if baseFee == nil {
		baseFee = new(big.Int)
	}

	maxFee = new(big.Int).Mul(baseFee, big.NewInt(2))
	maxFee.Add(maxFee, tip)
	return maxFee, tip, nil
}

// EstimateGas estimates the gas limit of a call.
func (c *EthereumClient) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	gas, err := c.client.EstimateGas(ctx, msg)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate gas: %w", err)
	}
	return gas, nil
}

// SendTransaction broadcasts a signed transaction.
func (c *EthereumClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.client.SendTransaction(ctx, tx); err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}
	return nil
}
