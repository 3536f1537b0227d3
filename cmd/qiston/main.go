package main

import (
	"context"
	"fmt"
	"os"

	"github.com/quistonpe/qiston/internal/config"
	"github.com/quistonpe/qiston/internal/database"
	"github.com/quistonpe/qiston/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load("", "", "")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	invoiceService := service.NewInvoiceService(db, cfg)

	rootCmd := newRootCmd(invoiceService)
	return rootCmd.ExecuteContext(ctx)
}
