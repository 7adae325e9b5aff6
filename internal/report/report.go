// Package report computes derived read models from ledger snapshots:
// running totals, per-category breakdowns, recent activity, and the
// date-filtered profit and loss statement. Every function here is pure; the
// engine never caches and never mutates its inputs.
package report

import (
	"sort"

	"github.com/keystone-financial/ledger/internal/model"
)

// DefaultRecentLimit is how many recent transactions the dashboard shows.
const DefaultRecentLimit = 5

// Totals holds the three headline figures. Sums are never rounded here;
// two-decimal rounding is a presentation concern.
type Totals struct {
	TotalIncome   float64
	TotalExpenses float64
	NetProfit     float64
}

// CategoryAmount is one bucket of a per-category breakdown.
type CategoryAmount struct {
	Name   string
	Amount float64
}

// ProfitAndLoss is the date-filtered report: the filtered record sets, the
// totals over them, and per-side category breakdowns.
type ProfitAndLoss struct {
	Start              model.Date
	End                model.Date
	Income             []model.Transaction
	Expenses           []model.Transaction
	Totals             Totals
	IncomeByCategory   []CategoryAmount
	ExpensesByCategory []CategoryAmount
}

// Summarize computes headline totals over both collections. Empty
// collections sum to zero.
func Summarize(income, expenses []model.Transaction) Totals {
	t := Totals{
		TotalIncome:   sumAmounts(income),
		TotalExpenses: sumAmounts(expenses),
	}
	t.NetProfit = t.TotalIncome - t.TotalExpenses
	return t
}

func sumAmounts(txns []model.Transaction) float64 {
	var sum float64
	for _, txn := range txns {
		sum += txn.Amount
	}
	return sum
}

// ByCategory groups transactions by category name and sums their amounts.
// Buckets are ordered by amount descending; ties keep the order in which
// the category was first encountered. Categories with no transactions are
// omitted, and a dangling category name (one no longer present in the
// category list) simply forms its own bucket.
func ByCategory(txns []model.Transaction) []CategoryAmount {
	index := make(map[string]int)
	var buckets []CategoryAmount

	for _, txn := range txns {
		i, ok := index[txn.Category]
		if !ok {
			i = len(buckets)
			index[txn.Category] = i
			buckets = append(buckets, CategoryAmount{Name: txn.Category})
		}
		buckets[i].Amount += txn.Amount
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Amount > buckets[j].Amount
	})
	return buckets
}

// Recent returns the union of both collections ordered by date descending,
// truncated to limit. A non-positive limit means DefaultRecentLimit. The
// sort is stable; ordering among same-date records is unspecified but
// deterministic.
func Recent(income, expenses []model.Transaction, limit int) []model.Transaction {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	merged := make([]model.Transaction, 0, len(income)+len(expenses))
	merged = append(merged, income...)
	merged = append(merged, expenses...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})

	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// NewProfitAndLoss filters both collections to records dated within
// [start, end] inclusive (the end date covers its entire calendar day) and
// computes totals and category breakdowns over the filtered sets.
func NewProfitAndLoss(income, expenses []model.Transaction, start, end model.Date) ProfitAndLoss {
	filteredIncome := filterByDate(income, start, end)
	filteredExpenses := filterByDate(expenses, start, end)

	return ProfitAndLoss{
		Start:              start,
		End:                end,
		Income:             filteredIncome,
		Expenses:           filteredExpenses,
		Totals:             Summarize(filteredIncome, filteredExpenses),
		IncomeByCategory:   ByCategory(filteredIncome),
		ExpensesByCategory: ByCategory(filteredExpenses),
	}
}

func filterByDate(txns []model.Transaction, start, end model.Date) []model.Transaction {
	filtered := make([]model.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.Date.Before(start) || txn.Date.After(end) {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered
}
