package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/keystone-financial/ledger/internal/common"
	"github.com/keystone-financial/ledger/internal/config"
	"github.com/keystone-financial/ledger/internal/ledger"
	"github.com/keystone-financial/ledger/internal/model"
	"github.com/keystone-financial/ledger/internal/storage"
)

// openLedger opens the configured database and loads the ledger from it.
// The caller is responsible for closing the returned store.
func openLedger(ctx context.Context) (*ledger.Ledger, storage.Store, error) {
	dbPath := viper.GetString("data.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/keystone/ledger.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, common.NewUserError(
			fmt.Sprintf("could not open ledger database at %s", dbPath), err)
	}

	led, err := ledger.Open(ctx, store)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	return led, store, nil
}

// parseTransactionType validates a --type flag value.
func parseTransactionType(s string) (model.TransactionType, error) {
	typ := model.TransactionType(s)
	if !typ.Valid() {
		return "", fmt.Errorf("invalid transaction type %q (expected income or expense)", s)
	}
	return typ, nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(flag, value string) (model.Date, error) {
	if value == "" {
		return model.Date{}, fmt.Errorf("--%s is required", flag)
	}
	date, err := model.ParseDate(value)
	if err != nil {
		return model.Date{}, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return date, nil
}
