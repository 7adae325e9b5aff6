package ledger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/keystone-financial/ledger/internal/common"
	"github.com/keystone-financial/ledger/internal/model"
)

// transactionStore holds the ordered records of one transaction type.
// Ordering is insertion order, most-recently-added first; the store never
// reorders on update.
type transactionStore struct {
	typ  model.TransactionType
	txns []model.Transaction
}

func newTransactionStore(typ model.TransactionType) *transactionStore {
	return &transactionStore{typ: typ}
}

// add assigns a fresh id, stamps the store's type tag, and inserts the
// record at the front of the collection.
func (s *transactionStore) add(txn model.Transaction) model.Transaction {
	txn.ID = uuid.NewString()
	txn.Type = s.typ
	s.txns = append([]model.Transaction{txn}, s.txns...)
	return txn
}

// update replaces the fields of the record with the given id in place. The
// id and the record's position in the collection are unchanged.
func (s *transactionStore) update(id string, txn model.Transaction) (model.Transaction, error) {
	for i := range s.txns {
		if s.txns[i].ID == id {
			txn.ID = id
			txn.Type = s.typ
			s.txns[i] = txn
			return txn, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("%s transaction %q: %w", s.typ, id, common.ErrNotFound)
}

// remove deletes the record with the given id. Removing an absent id is a
// no-op; it reports whether anything changed.
func (s *transactionStore) remove(id string) bool {
	for i := range s.txns {
		if s.txns[i].ID == id {
			s.txns = append(s.txns[:i], s.txns[i+1:]...)
			return true
		}
	}
	return false
}

// get returns the record with the given id, or nil if absent.
func (s *transactionStore) get(id string) *model.Transaction {
	for i := range s.txns {
		if s.txns[i].ID == id {
			txn := s.txns[i]
			return &txn
		}
	}
	return nil
}

// list returns a copy of the ordered collection, most-recently-added first.
func (s *transactionStore) list() []model.Transaction {
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// replaceAll swaps in a new collection, used when loading persisted state.
func (s *transactionStore) replaceAll(txns []model.Transaction) {
	s.txns = make([]model.Transaction, len(txns))
	copy(s.txns, txns)
	for i := range s.txns {
		s.txns[i].Type = s.typ
	}
}

// clear empties the collection.
func (s *transactionStore) clear() {
	s.txns = nil
}
