package model

// Category is a named grouping tag for transactions, scoped to income or
// expense. Transactions reference categories by name, not by id, so deleting
// a category leaves existing records with a dangling name that the read path
// must tolerate.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type TransactionType `json:"type"`
}

// Default category lists, restored by a full reset and used when no stored
// state exists yet.
var (
	DefaultIncomeCategories = []Category{
		{ID: "inc-1", Name: "Client Payment", Type: TypeIncome},
		{ID: "inc-2", Name: "Sales", Type: TypeIncome},
		{ID: "inc-3", Name: "Reimbursement", Type: TypeIncome},
	}

	DefaultExpenseCategories = []Category{
		{ID: "exp-1", Name: "Office Supplies", Type: TypeExpense},
		{ID: "exp-2", Name: "Marketing", Type: TypeExpense},
		{ID: "exp-3", Name: "Software", Type: TypeExpense},
		{ID: "exp-4", Name: "Travel", Type: TypeExpense},
	}
)

// DefaultCategories returns a fresh copy of the default list for the given
// type, safe for callers to mutate.
func DefaultCategories(t TransactionType) []Category {
	var defaults []Category
	if t == TypeIncome {
		defaults = DefaultIncomeCategories
	} else {
		defaults = DefaultExpenseCategories
	}
	out := make([]Category, len(defaults))
	copy(out, defaults)
	return out
}
