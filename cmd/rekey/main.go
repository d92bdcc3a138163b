// Re-encrypts the stored wallet under a new password without starting the server.
// Usage: go run ./cmd/rekey
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/unified-wallet/internal/config"
	"github.com/AlexZinkM/unified-wallet/internal/logger"
	"github.com/AlexZinkM/unified-wallet/internal/model"
	"github.com/AlexZinkM/unified-wallet/internal/storage"
	"github.com/AlexZinkM/unified-wallet/internal/wallet"

	"go.uber.org/zap"
)

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

	if err := rekey(context.Background(), cfg, log); err != nil {
		log.Error("rekey failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
	log.Info("wallet re-encrypted", zap.String("store", cfg.StorePath))
}

func rekey(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.StoreBackend == "memory" {
		return errors.New("nothing to rekey: STORE_BACKEND is memory")
	}

	kv, err := storage.Open(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		return err
	}
	defer kv.Close()

	manager := wallet.NewManager(wallet.NewStore(kv), wallet.WithLogger(log))
	defer manager.Lock()

	state, err := manager.State(ctx)
	if err != nil {
		return err
	}
	if state == wallet.StateUninitialized {
		return model.ErrNoWalletFound
	}

	oldPassword, err := config.PromptForPassword("Current password: ")
	if err != nil {
		return err
	}
	defer clear(oldPassword)

	newPassword, err := config.PromptForPassword("New password: ")
	if err != nil {
		return err
	}
	defer clear(newPassword)

	confirm, err := config.PromptForPassword("Repeat new password: ")
	if err != nil {
		return err
	}
	defer clear(confirm)

	if !bytes.Equal(newPassword, confirm) {
		return errors.New("passwords do not match")
	}

	return manager.ChangePassword(ctx, oldPassword, newPassword)
}
