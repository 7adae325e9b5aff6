// Package ledger implements the bookkeeping state model: two ordered
// transaction collections, two category lists, and the facade that owns
// them. Every mutation is written through to durable storage before the
// call returns; a failed write is logged and surfaced but never corrupts
// the in-memory state, which stays the source of truth for the session.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/keystone-financial/ledger/internal/common"
	"github.com/keystone-financial/ledger/internal/model"
	"github.com/keystone-financial/ledger/internal/storage"
)

// Ledger is the single entry point for all ledger reads and mutations. It
// is safe for use from one goroutine at a time; the internal mutex guards
// against accidental concurrent use, not a concurrent workload.
type Ledger struct {
	mu          sync.Mutex
	store       storage.Store
	income      *transactionStore
	expenses    *transactionStore
	incomeCats  *categoryStore
	expenseCats *categoryStore
}

// Open loads ledger state from the store. A key that is missing or fails to
// parse falls back to its documented default (empty transaction lists, the
// fixed default category lists); startup never fails on bad stored state.
func Open(ctx context.Context, store storage.Store) (*Ledger, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store", common.ErrMissingConfig)
	}

	l := &Ledger{
		store:       store,
		income:      newTransactionStore(model.TypeIncome),
		expenses:    newTransactionStore(model.TypeExpense),
		incomeCats:  newCategoryStore(model.TypeIncome),
		expenseCats: newCategoryStore(model.TypeExpense),
	}

	var txns []model.Transaction
	if loadKey(ctx, store, storage.KeyIncomeTransactions, &txns) {
		l.income.replaceAll(txns)
	}
	txns = nil
	if loadKey(ctx, store, storage.KeyExpenseTransactions, &txns) {
		l.expenses.replaceAll(txns)
	}

	var cats []model.Category
	if loadKey(ctx, store, storage.KeyIncomeCategories, &cats) {
		l.incomeCats.replaceAll(cats)
	}
	cats = nil
	if loadKey(ctx, store, storage.KeyExpenseCategories, &cats) {
		l.expenseCats.replaceAll(cats)
	}

	common.LogInfo("ledger loaded", common.Fields{
		"income_transactions":  len(l.income.list()),
		"expense_transactions": len(l.expenses.list()),
		"income_categories":    len(l.incomeCats.list()),
		"expense_categories":   len(l.expenseCats.list()),
	})

	return l, nil
}

// loadKey reads and decodes one logical key. It reports whether a usable
// value was found; read and parse failures are logged and treated as absent.
func loadKey(ctx context.Context, store storage.Store, key string, out any) bool {
	data, ok, err := store.Read(ctx, key)
	if err != nil {
		slog.Warn("failed to read stored ledger state, using defaults", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Warn("stored ledger state is unparseable, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

// SaveTransaction creates or updates a record. A transaction with a
// non-empty id routes to update and fails with ErrNotFound if no such
// record exists; an empty id routes to add, which assigns a fresh id and
// inserts at the front of the collection. The stored record is returned.
func (l *Ledger) SaveTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	store, key, err := l.transactionsFor(txn.Type)
	if err != nil {
		return model.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var saved model.Transaction
	if txn.ID == "" {
		saved = store.add(txn)
	} else {
		saved, err = store.update(txn.ID, txn)
		if err != nil {
			return model.Transaction{}, err
		}
	}

	l.persist(ctx, key, store.list())
	return saved, nil
}

// DeleteTransaction removes the record with the given id from the owning
// collection. Deleting an absent id is a no-op.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string, typ model.TransactionType) error {
	store, key, err := l.transactionsFor(typ)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if store.remove(id) {
		l.persist(ctx, key, store.list())
	}
	return nil
}

// Transaction returns the record with the given id, or ErrNotFound.
func (l *Ledger) Transaction(id string, typ model.TransactionType) (model.Transaction, error) {
	store, _, err := l.transactionsFor(typ)
	if err != nil {
		return model.Transaction{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if txn := store.get(id); txn != nil {
		return *txn, nil
	}
	return model.Transaction{}, fmt.Errorf("%s transaction %q: %w", typ, id, common.ErrNotFound)
}

// Transactions returns the ordered collection for the given type,
// most-recently-added first. An unknown type yields nil.
func (l *Ledger) Transactions(typ model.TransactionType) []model.Transaction {
	store, _, err := l.transactionsFor(typ)
	if err != nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return store.list()
}

// AddCategory appends a new category of the given type. A blank name is a
// silent no-op returning nil, nil; a case-insensitive duplicate fails with
// ErrDuplicateCategory.
func (l *Ledger) AddCategory(ctx context.Context, typ model.TransactionType, name string) (*model.Category, error) {
	store, key, err := l.categoriesFor(typ)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cat, err := store.add(name)
	if err != nil {
		return nil, err
	}
	if cat != nil {
		l.persist(ctx, key, store.list())
	}
	return cat, nil
}

// RemoveCategory deletes the category with the given id. Removing an absent
// id is a no-op, and transactions referencing the category are untouched.
func (l *Ledger) RemoveCategory(ctx context.Context, typ model.TransactionType, id string) error {
	store, key, err := l.categoriesFor(typ)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if store.remove(id) {
		l.persist(ctx, key, store.list())
	}
	return nil
}

// UpdateCategories replaces the category list for the given type wholesale.
func (l *Ledger) UpdateCategories(ctx context.Context, cats []model.Category, typ model.TransactionType) error {
	store, key, err := l.categoriesFor(typ)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	store.replaceAll(cats)
	l.persist(ctx, key, store.list())
	return nil
}

// Categories returns the ordered category list for the given type. An
// unknown type yields nil.
func (l *Ledger) Categories(typ model.TransactionType) []model.Category {
	store, _, err := l.categoriesFor(typ)
	if err != nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return store.list()
}

// ResetAll clears both transaction collections and restores both category
// lists to their defaults, then persists all four keys.
func (l *Ledger) ResetAll(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.income.clear()
	l.expenses.clear()
	l.incomeCats.reset()
	l.expenseCats.reset()

	l.persist(ctx, storage.KeyIncomeTransactions, l.income.list())
	l.persist(ctx, storage.KeyExpenseTransactions, l.expenses.list())
	l.persist(ctx, storage.KeyIncomeCategories, l.incomeCats.list())
	l.persist(ctx, storage.KeyExpenseCategories, l.expenseCats.list())
	return nil
}

// Flush rewrites every logical key from current in-memory state. Unlike the
// per-mutation write-through, a failure here is returned to the caller.
func (l *Ledger) Flush(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var errs []error
	for key, value := range map[string]any{
		storage.KeyIncomeTransactions:  l.income.list(),
		storage.KeyExpenseTransactions: l.expenses.list(),
		storage.KeyIncomeCategories:    l.incomeCats.list(),
		storage.KeyExpenseCategories:   l.expenseCats.list(),
	} {
		if err := l.writeKey(ctx, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// persist writes one key through to storage. Failures are logged and
// surfaced to the operator but never propagated: the in-memory mutation has
// already happened and stays authoritative for the session.
func (l *Ledger) persist(ctx context.Context, key string, value any) {
	if err := l.writeKey(ctx, key, value); err != nil {
		common.LogError(err, "ledger state not persisted; in-memory state still current", common.Fields{"key": key})
	}
}

func (l *Ledger) writeKey(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	if err := l.store.Write(ctx, key, data); err != nil {
		return fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}
	return nil
}

func (l *Ledger) transactionsFor(typ model.TransactionType) (*transactionStore, string, error) {
	switch typ {
	case model.TypeIncome:
		return l.income, storage.KeyIncomeTransactions, nil
	case model.TypeExpense:
		return l.expenses, storage.KeyExpenseTransactions, nil
	default:
		return nil, "", fmt.Errorf("%w: %q", common.ErrInvalidType, typ)
	}
}

func (l *Ledger) categoriesFor(typ model.TransactionType) (*categoryStore, string, error) {
	switch typ {
	case model.TypeIncome:
		return l.incomeCats, storage.KeyIncomeCategories, nil
	case model.TypeExpense:
		return l.expenseCats, storage.KeyExpenseCategories, nil
	default:
		return nil, "", fmt.Errorf("%w: %q", common.ErrInvalidType, typ)
	}
}
