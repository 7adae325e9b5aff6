// Package storage provides the durable key-value persistence layer for the
// ledger. Each logical key holds one JSON document; the ledger facade reads
// all keys at startup and writes the affected key through on every mutation.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Logical keys. The key names mirror the original browser demo's local
// storage layout so exported state stays recognizable.
const (
	KeyIncomeTransactions  = "ledgerIncomeTransactions"
	KeyExpenseTransactions = "ledgerExpenseTransactions"
	KeyIncomeCategories    = "ledgerIncomeCategories"
	KeyExpenseCategories   = "ledgerExpenseCategories"
)

// Keys lists every logical key the ledger persists.
func Keys() []string {
	return []string{
		KeyIncomeTransactions,
		KeyExpenseTransactions,
		KeyIncomeCategories,
		KeyExpenseCategories,
	}
}

// Store is the contract for durable key-value persistence. Read reports
// ok=false for a key that has never been written; that is not an error.
// Implementations never mutate ledger state on their own.
type Store interface {
	Read(ctx context.Context, key string) (value []byte, ok bool, err error)
	Write(ctx context.Context, key string, value []byte) error
	Close() error
}

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrWriteFailed = errors.New("write failed")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateKey ensures a storage key is not empty.
func validateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: key", ErrEmptyString)
	}
	return nil
}
