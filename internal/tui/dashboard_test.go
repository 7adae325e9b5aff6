package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keystone-financial/ledger/internal/model"
)

func dashboardFixtures() (income, expenses []model.Transaction) {
	income = []model.Transaction{
		{
			ID:          "i1",
			Date:        model.NewDate(2024, time.March, 10),
			Description: "Website redesign invoice",
			Amount:      2500,
			Category:    "Client Payment",
			Type:        model.TypeIncome,
		},
	}
	expenses = []model.Transaction{
		{
			ID:          "e1",
			Date:        model.NewDate(2024, time.March, 12),
			Description: "Figma subscription",
			Amount:      45,
			Category:    "Software",
			Type:        model.TypeExpense,
		},
		{
			ID:          "e2",
			Date:        model.NewDate(2024, time.March, 5),
			Description: "Print ads",
			Amount:      300,
			Category:    "Marketing",
			Type:        model.TypeExpense,
		},
	}
	return income, expenses
}

func TestNewDashboard(t *testing.T) {
	income, expenses := dashboardFixtures()
	m := New(income, expenses)

	assert.Equal(t, 2500.0, m.totals.TotalIncome)
	assert.Equal(t, 345.0, m.totals.TotalExpenses)
	assert.Equal(t, 2155.0, m.totals.NetProfit)
	require.Len(t, m.recent, 3)
	assert.Equal(t, "e1", m.recent[0].ID)
	require.Len(t, m.expenses, 2)
	assert.Equal(t, "Marketing", m.expenses[0].Name)
}

func TestDashboardView(t *testing.T) {
	income, expenses := dashboardFixtures()
	view := New(income, expenses).View()

	assert.Contains(t, view, "Keystone Ledger")
	assert.Contains(t, view, "Recent Activity")
	assert.Contains(t, view, "Expenses by Category")
	assert.Contains(t, view, "$2500.00")
	assert.Contains(t, view, "Figma subscription")
	assert.Contains(t, view, "Marketing")
}

func TestDashboardViewEmptyLedger(t *testing.T) {
	view := New(nil, nil).View()

	assert.Contains(t, view, "$0.00")
	assert.NotContains(t, view, "Expenses by Category")
}

func TestDashboardQuitKeys(t *testing.T) {
	income, expenses := dashboardFixtures()

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := New(income, expenses)
			keyMsg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			if key == "esc" {
				keyMsg = tea.KeyMsg{Type: tea.KeyEsc}
			}
			if key == "ctrl+c" {
				keyMsg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}

			_, cmd := m.Update(keyMsg)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestDashboardSmallTerminal(t *testing.T) {
	m := New(nil, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})

	view := updated.(Model).View()
	assert.Equal(t, "Terminal too small", view)
}
