package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/keystone-financial/ledger/internal/cli"
	"github.com/keystone-financial/ledger/internal/model"
	"github.com/keystone-financial/ledger/internal/report"
)

func reportCmd() *cobra.Command {
	var (
		startFlag string
		endFlag   string
		csvPath   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a profit and loss report",
		Long: `Generate a profit and loss report for a date range. Both endpoints
are inclusive, so a report from 2024-03-01 to 2024-03-31 covers every
transaction dated within March.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			start, err := parseDateFlag("start", startFlag)
			if err != nil {
				return err
			}
			end, err := parseDateFlag("end", endFlag)
			if err != nil {
				return err
			}
			if end.Before(start) {
				return fmt.Errorf("--end must not be before --start")
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			pl := report.NewProfitAndLoss(
				led.Transactions(model.TypeIncome),
				led.Transactions(model.TypeExpense),
				start, end,
			)

			if csvPath != "" {
				if err := writeReportCSV(csvPath, pl); err != nil {
					return fmt.Errorf("failed to export report: %w", err)
				}
				fmt.Println(cli.FormatSuccess("Exported report to " + csvPath))
				return nil
			}

			printReport(pl)
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "Range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endFlag, "end", "", "Range end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the report to a CSV file instead of stdout")

	return cmd
}

func printReport(pl report.ProfitAndLoss) {
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Profit & Loss  %s to %s", pl.Start, pl.End)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Total Income\t%s\n", cli.FormatAmount(pl.Totals.TotalIncome))
	fmt.Fprintf(w, "Total Expenses\t%s\n", cli.FormatAmount(pl.Totals.TotalExpenses))
	fmt.Fprintf(w, "Net Profit\t%s\n", cli.FormatAmount(pl.Totals.NetProfit))
	w.Flush()

	printBreakdown("Income by Category", pl.IncomeByCategory)
	printBreakdown("Expenses by Category", pl.ExpensesByCategory)
}

func printBreakdown(title string, buckets []report.CategoryAmount) {
	if len(buckets) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(cli.StyleTitle(title))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()
	for _, bucket := range buckets {
		fmt.Fprintf(w, "%s\t%s\n", bucket.Name, cli.FormatAmount(bucket.Amount))
	}
}

// writeReportCSV exports the filtered transactions with a summary footer.
func writeReportCSV(path string, pl report.ProfitAndLoss) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Date", "Type", "Description", "Category", "Amount"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	writeRows := func(txns []model.Transaction) error {
		for _, txn := range txns {
			row := []string{
				txn.Date.String(),
				string(txn.Type),
				txn.Description,
				txn.Category,
				strconv.FormatFloat(txn.Amount, 'f', 2, 64),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
		return nil
	}

	if err := writeRows(pl.Income); err != nil {
		return err
	}
	if err := writeRows(pl.Expenses); err != nil {
		return err
	}

	summary := [][]string{
		{"", "", "", "Total Income", strconv.FormatFloat(pl.Totals.TotalIncome, 'f', 2, 64)},
		{"", "", "", "Total Expenses", strconv.FormatFloat(pl.Totals.TotalExpenses, 'f', 2, 64)},
		{"", "", "", "Net Profit", strconv.FormatFloat(pl.Totals.NetProfit, 'f', 2, 64)},
	}
	for _, row := range summary {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	return nil
}
