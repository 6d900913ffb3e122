package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/jbaiden/bankledger/internal/batch"
	"github.com/jbaiden/bankledger/internal/config"
	"github.com/jbaiden/bankledger/internal/logging"
	"github.com/jbaiden/bankledger/internal/loyalty"
	"github.com/jbaiden/bankledger/internal/processor"
	"github.com/jbaiden/bankledger/internal/registry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.Init("bankledger", cfg.LogLevel, cfg.AppEnv)
	ctx := logging.WithLogger(context.Background(), logger)

	reg := registry.New()
	loyal := loyalty.New(reg)

	preloadAccounts(ctx, cfg, reg, loyal)

	proc := processor.New(reg, loyal, cfg, os.Stdout)
	if err := proc.Run(ctx, os.Stdin); err != nil {
		logger.Error("command loop failed", "error", err)
		os.Exit(1)
	}
}

// preloadAccounts loads the accounts file if it exists. A missing or broken
// file is reported and the run continues with whatever loaded.
func preloadAccounts(ctx context.Context, cfg *config.Config, reg *registry.Registry, loyal *loyalty.Engine) {
	log := logging.FromContext(ctx)

	f, err := os.Open(cfg.AccountsFile)
	if err != nil {
		fmt.Printf("Could not load accounts from %q: %v\n", cfg.AccountsFile, err)
		return
	}
	defer f.Close()

	count, err := batch.LoadAccounts(ctx, f, reg, loyal)
	if err != nil {
		fmt.Printf("Could not load accounts from %q: %v\n", cfg.AccountsFile, err)
		return
	}
	log.Info("accounts loaded", "file", cfg.AccountsFile, "count", count)
	fmt.Printf("Accounts in %q loaded to the database.\n", cfg.AccountsFile)
}
