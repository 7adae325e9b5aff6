package ledger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/keystone-financial/ledger/internal/common"
	"github.com/keystone-financial/ledger/internal/model"
)

// categoryStore holds the ordered category list of one transaction type.
type categoryStore struct {
	typ  model.TransactionType
	cats []model.Category
}

func newCategoryStore(typ model.TransactionType) *categoryStore {
	return &categoryStore{typ: typ, cats: model.DefaultCategories(typ)}
}

// add appends a new category with a fresh id. Names are trimmed before
// comparison; a name that collides case-insensitively with an existing
// category of the same type fails with ErrDuplicateCategory. A blank name
// is a silent no-op and returns nil, nil.
func (s *categoryStore) add(name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	for _, cat := range s.cats {
		if strings.EqualFold(cat.Name, name) {
			return nil, fmt.Errorf("%s category %q: %w", s.typ, name, common.ErrDuplicateCategory)
		}
	}

	cat := model.Category{
		ID:   uuid.NewString(),
		Name: name,
		Type: s.typ,
	}
	s.cats = append(s.cats, cat)
	return &cat, nil
}

// remove deletes the category with the given id. Removing an absent id is a
// no-op. Transactions referencing the category's name are left untouched.
func (s *categoryStore) remove(id string) bool {
	for i := range s.cats {
		if s.cats[i].ID == id {
			s.cats = append(s.cats[:i], s.cats[i+1:]...)
			return true
		}
	}
	return false
}

// list returns a copy of the category list in insertion order.
func (s *categoryStore) list() []model.Category {
	out := make([]model.Category, len(s.cats))
	copy(out, s.cats)
	return out
}

// replaceAll swaps in a new category list wholesale, stamping each entry
// with the store's type.
func (s *categoryStore) replaceAll(cats []model.Category) {
	s.cats = make([]model.Category, len(cats))
	copy(s.cats, cats)
	for i := range s.cats {
		s.cats[i].Type = s.typ
	}
}

// reset restores the documented default list.
func (s *categoryStore) reset() {
	s.cats = model.DefaultCategories(s.typ)
}
