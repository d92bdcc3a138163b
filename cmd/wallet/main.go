// Local Solana + Ethereum wallet served over HTTP on localhost.
// Usage: go run ./cmd/wallet
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/AlexZinkM/unified-wallet/docs"
	"github.com/AlexZinkM/unified-wallet/ethereum"
	"github.com/AlexZinkM/unified-wallet/internal/api"
	"github.com/AlexZinkM/unified-wallet/internal/chains"
	"github.com/AlexZinkM/unified-wallet/internal/client"
	"github.com/AlexZinkM/unified-wallet/internal/config"
	"github.com/AlexZinkM/unified-wallet/internal/logger"
	"github.com/AlexZinkM/unified-wallet/internal/storage"
	"github.com/AlexZinkM/unified-wallet/internal/wallet"
	"github.com/AlexZinkM/unified-wallet/solana"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title        Unified Wallet API
// @version      1.0
// @description  Local Solana and Ethereum wallet: one recovery phrase, encrypted at rest, unlocked per session.
// @host         localhost:8080
// @BasePath     /
func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	cfg := config.Get()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("wallet service stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	kv, err := storage.Open(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		return err
	}
	defer kv.Close()

	manager := wallet.NewManager(wallet.NewStore(kv),
		wallet.WithLogger(log.Named("wallet")),
		wallet.WithMnemonicWords(cfg.MnemonicWords),
		wallet.WithAutoLock(config.GetAutoLock()),
	)
	defer manager.Lock()

	solanaClient, err := client.NewSolanaClient(config.GetSolanaRPCURL(), cfg.SolanaUSDCMint)
	if err != nil {
		return fmt.Errorf("solana client: %w", err)
	}
	ethereumClient, err := client.NewEthereumClient(config.GetEthereumRPCURL(), cfg.EthereumUSDCContract)
	if err != nil {
		return fmt.Errorf("ethereum client: %w", err)
	}
	defer ethereumClient.Close()
	prices := client.NewCoinGeckoClient(cfg.CoinGeckoURL)

	registry := chains.NewRegistry(chains.WithSendCooldown(config.GetPayCooldown()))
	registry.Register(solana.NewAdapter(manager, solanaClient, prices, log.Named("solana")))
	registry.Register(ethereum.NewAdapter(manager, ethereumClient, prices, cfg.EthereumChainID, log.Named("ethereum")))

	router, err := api.SetupRouter(manager, registry, log.Named("http"))
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              "127.0.0.1:" + config.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.StoreBackend),
			zap.Strings("chains", chainNames(registry)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func chainNames(registry *chains.Registry) []string {
	var names []string
	for _, c := range registry.List() {
		names = append(names, string(c))
	}
	return names
}
