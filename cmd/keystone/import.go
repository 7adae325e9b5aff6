package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/keystone-financial/ledger/internal/cli"
	"github.com/keystone-financial/ledger/internal/model"
	"github.com/keystone-financial/ledger/internal/ofx"
)

func importCmd() *cobra.Command {
	var (
		incomeCategory  string
		expenseCategory string
	)

	cmd := &cobra.Command{
		Use:   "import <file.ofx>",
		Short: "Import transactions from an OFX/QFX statement",
		Long: `Import a bank or credit card statement. Credits are recorded as income
and debits as expenses, with the categories given by the flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open statement: %w", err)
			}
			defer f.Close()

			importer := ofx.NewImporter(ofx.ImportOptions{
				IncomeCategory:  incomeCategory,
				ExpenseCategory: expenseCategory,
			})
			transactions, err := importer.ParseFile(ctx, f)
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				fmt.Println(cli.FormatWarning("Statement contained no transactions."))
				return nil
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var income, expenses int
			for _, txn := range transactions {
				if _, err := led.SaveTransaction(ctx, txn); err != nil {
					return fmt.Errorf("failed to save imported transaction: %w", err)
				}
				if txn.Type == model.TypeIncome {
					income++
				} else {
					expenses++
				}
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Imported %d transactions (%d income, %d expense)",
				len(transactions), income, expenses)))
			return nil
		},
	}

	cmd.Flags().StringVar(&incomeCategory, "income-category", "", "Category for credited entries")
	cmd.Flags().StringVar(&expenseCategory, "expense-category", "", "Category for debited entries")

	return cmd
}
