// Package tui renders a read-only terminal dashboard for the ledger.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/keystone-financial/ledger/internal/cli"
	"github.com/keystone-financial/ledger/internal/model"
	"github.com/keystone-financial/ledger/internal/report"
)

const recentRows = 10

// Model is the dashboard bubbletea model. It presents a snapshot of the
// ledger and never mutates it.
type Model struct {
	totals   report.Totals
	expenses []report.CategoryAmount
	recent   []model.Transaction
	table    table.Model
	width    int
	height   int
}

// New builds a dashboard from ledger snapshots.
func New(income, expenses []model.Transaction) Model {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Description", Width: 30},
		{Title: "Category", Width: 20},
		{Title: "Amount", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(recentRows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#333")).
		BorderBottom(true).
		Bold(false)
	t.SetStyles(s)

	m := Model{
		totals:   report.Summarize(income, expenses),
		expenses: report.ByCategory(expenses),
		recent:   report.Recent(income, expenses, recentRows),
		table:    t,
		width:    80,
		height:   24,
	}
	m.table.SetRows(m.buildRows())

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.height < 10 {
		return "Terminal too small"
	}

	sections := []string{
		cli.FormatTitle("Keystone Ledger"),
		m.renderTotals(),
		cli.TitleStyle.UnsetMargins().Render("Recent Activity"),
		m.table.View(),
	}

	if breakdown := m.renderBreakdown(); breakdown != "" {
		sections = append(sections,
			cli.TitleStyle.UnsetMargins().Render("Expenses by Category"),
			breakdown,
		)
	}

	sections = append(sections,
		cli.StyleSubtle("[↑↓] Navigate  [q] Quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderTotals renders the income, expense, and net profit summary line.
func (m Model) renderTotals() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		cli.TableCellStyle.Render("Income: "+cli.IncomeStyle.Render(cli.FormatAmount(m.totals.TotalIncome))),
		cli.TableCellStyle.Render("Expenses: "+cli.ExpenseStyle.Render(cli.FormatAmount(m.totals.TotalExpenses))),
		cli.TableCellStyle.Render("Net Profit: "+cli.FormatSignedAmount(m.totals.NetProfit)),
	)
}

// renderBreakdown renders a bar per expense category, scaled to the largest.
func (m Model) renderBreakdown() string {
	if len(m.expenses) == 0 {
		return ""
	}

	const barWidth = 30
	largest := m.expenses[0].Amount

	lines := make([]string, 0, len(m.expenses))
	for _, bucket := range m.expenses {
		filled := 0
		if largest > 0 {
			filled = int(bucket.Amount / largest * barWidth)
		}
		bar := cli.ExpenseStyle.Render(strings.Repeat("█", filled)) +
			cli.StyleSubtle(strings.Repeat("░", barWidth-filled))
		lines = append(lines, fmt.Sprintf("%-20s %s %s",
			truncate(bucket.Name, 20), bar, cli.FormatAmount(bucket.Amount)))
	}

	return strings.Join(lines, "\n")
}

// buildRows builds the recent activity table rows. Expense amounts render
// with a leading minus so the direction is visible at a glance.
func (m Model) buildRows() []table.Row {
	rows := make([]table.Row, 0, len(m.recent))
	for _, txn := range m.recent {
		amount := cli.FormatAmount(txn.Amount)
		if txn.Type == model.TypeExpense {
			amount = "-" + amount
		}
		rows = append(rows, table.Row{
			txn.Date.String(),
			truncate(txn.Description, 30),
			truncate(txn.Category, 20),
			amount,
		})
	}
	return rows
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// Run starts the dashboard in the alternate screen and blocks until quit.
func Run(income, expenses []model.Transaction) error {
	p := tea.NewProgram(New(income, expenses), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}
