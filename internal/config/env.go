package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlexZinkM/unified-wallet/internal/storage"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Passwords are never configured; they arrive per request or from the terminal.
type Config struct {
	Port            string `envconfig:"PORT" default:"8080"`
	StoreBackend    string `envconfig:"STORE_BACKEND" default:"bolt"`
	StorePath       string `envconfig:"STORE_PATH" default:"wallet.db"`
	MnemonicWords   int    `envconfig:"MNEMONIC_WORDS" default:"12"`
	AutoLockMinutes int    `envconfig:"AUTO_LOCK_MINUTES" default:"15"`
	PayCooldown     int    `envconfig:"PAY_COOLDOWN_MINUTES" default:"0"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`

	SolanaRPCURL   string `envconfig:"SOLANA_RPC_URL" default:"https://api.devnet.solana.com"`
	SolanaUSDCMint string `envconfig:"SOLANA_USDC_MINT" default:"4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU"`

	EthereumRPCURL       string `envconfig:"ETHEREUM_RPC_URL" default:"https://ethereum-sepolia-rpc.publicnode.com"`
	EthereumChainID      int64  `envconfig:"ETHEREUM_CHAIN_ID" default:"11155111"`
	EthereumUSDCContract string `envconfig:"ETHEREUM_USDC_CONTRACT" default:"0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"`

	CoinGeckoURL string `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com/api/v3"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables. A .env file in the
// working directory is applied first when present; real environment wins.
func Init() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	return nil
}

// Validate rejects values the application cannot run with.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case storage.BackendBolt, storage.BackendFile, storage.BackendMemory:
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q: use bolt, file or memory", c.StoreBackend)
	}
	if c.StoreBackend != storage.BackendMemory && c.StorePath == "" {
		return errors.New("STORE_PATH is required for persistent backends")
	}
	if c.MnemonicWords != 12 && c.MnemonicWords != 24 {
		return fmt.Errorf("invalid MNEMONIC_WORDS %d: use 12 or 24", c.MnemonicWords)
	}
	if c.AutoLockMinutes < 0 || c.PayCooldown < 0 {
		return errors.New("AUTO_LOCK_MINUTES and PAY_COOLDOWN_MINUTES cannot be negative")
	}
	if c.EthereumChainID <= 0 {
		return fmt.Errorf("invalid ETHEREUM_CHAIN_ID %d", c.EthereumChainID)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetAutoLock returns the idle auto-lock timeout; zero disables it
func GetAutoLock() time.Duration {
	return time.Duration(Get().AutoLockMinutes) * time.Minute
}

// GetPayCooldown returns the minimum interval between sends; zero disables it
func GetPayCooldown() time.Duration {
	return time.Duration(Get().PayCooldown) * time.Minute
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetEthereumRPCURL returns Ethereum RPC URL from configuration
func GetEthereumRPCURL() string {
	return Get().EthereumRPCURL
}

// PromptForPassword prompts for a password in the terminal without echoing it.
// The caller must zero the returned slice after use.
func PromptForPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}
