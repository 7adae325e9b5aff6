package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/keystone-financial/ledger/internal/cli"
	"github.com/keystone-financial/ledger/internal/model"
)

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Manage income transactions",
		Long:  `List, add, edit, and delete income transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd(model.TypeIncome))
	cmd.AddCommand(addTransactionCmd(model.TypeIncome))
	cmd.AddCommand(editTransactionCmd(model.TypeIncome))
	cmd.AddCommand(deleteTransactionCmd(model.TypeIncome))

	return cmd
}

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Manage expense transactions",
		Long:  `List, add, edit, and delete expense transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd(model.TypeExpense))
	cmd.AddCommand(addTransactionCmd(model.TypeExpense))
	cmd.AddCommand(editTransactionCmd(model.TypeExpense))
	cmd.AddCommand(deleteTransactionCmd(model.TypeExpense))

	return cmd
}

// counterpartyFlag names the party flag per transaction type. Income records
// a client, expenses record a vendor.
func counterpartyFlag(typ model.TransactionType) string {
	if typ == model.TypeIncome {
		return "client"
	}
	return "vendor"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func listTransactionsCmd(typ model.TransactionType) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s transactions", typ),
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions := led.Transactions(typ)
			if len(transactions) == 0 {
				fmt.Printf("No %s transactions recorded yet.\n", typ)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				"ID", "Date", "Description", titleCase(counterpartyFlag(typ)),
				"Category", "Amount", "Status")
			for _, txn := range transactions {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					txn.ID, txn.Date, txn.Description, txn.Counterparty,
					txn.Category, cli.FormatAmount(txn.Amount), txn.Status)
			}

			return nil
		},
	}
}

func addTransactionCmd(typ model.TransactionType) *cobra.Command {
	var (
		date         string
		amount       float64
		category     string
		counterparty string
		method       string
		status       string
	)
	party := counterpartyFlag(typ)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: fmt.Sprintf("Add an %s transaction", typ),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			txnDate := model.Today()
			if date != "" {
				parsed, err := model.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				txnDate = parsed
			}

			if amount <= 0 {
				return fmt.Errorf("--amount must be positive")
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			saved, err := led.SaveTransaction(ctx, model.Transaction{
				Date:          txnDate,
				Description:   args[0],
				Amount:        amount,
				Category:      category,
				Counterparty:  counterparty,
				PaymentMethod: model.PaymentMethod(method),
				Status:        model.TransactionStatus(status),
				Type:          typ,
			})
			if err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %q (%s)",
				typ, saved.Description, cli.FormatAmount(saved.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Transaction amount in dollars")
	cmd.Flags().StringVar(&category, "category", "", "Category name")
	cmd.Flags().StringVar(&counterparty, party, "", titleCase(party)+" name")
	cmd.Flags().StringVar(&method, "method", string(model.MethodBankTransfer), "Payment method")
	cmd.Flags().StringVar(&status, "status", string(model.StatusPaid), "Payment status (Paid, Unpaid, Pending)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func editTransactionCmd(typ model.TransactionType) *cobra.Command {
	var (
		date         string
		description  string
		amount       float64
		category     string
		counterparty string
		method       string
		status       string
	)
	party := counterpartyFlag(typ)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: fmt.Sprintf("Edit an %s transaction", typ),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txn, err := led.Transaction(args[0], typ)
			if err != nil {
				return fmt.Errorf("failed to find transaction: %w", err)
			}

			// Only overwrite the fields the user set
			if cmd.Flags().Changed("date") {
				parsed, parseErr := model.ParseDate(date)
				if parseErr != nil {
					return fmt.Errorf("invalid --date: %w", parseErr)
				}
				txn.Date = parsed
			}
			if cmd.Flags().Changed("description") {
				txn.Description = description
			}
			if cmd.Flags().Changed("amount") {
				if amount <= 0 {
					return fmt.Errorf("--amount must be positive")
				}
				txn.Amount = amount
			}
			if cmd.Flags().Changed("category") {
				txn.Category = category
			}
			if cmd.Flags().Changed(party) {
				txn.Counterparty = counterparty
			}
			if cmd.Flags().Changed("method") {
				txn.PaymentMethod = model.PaymentMethod(method)
			}
			if cmd.Flags().Changed("status") {
				txn.Status = model.TransactionStatus(status)
			}

			if _, err := led.SaveTransaction(ctx, txn); err != nil {
				return fmt.Errorf("failed to update transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %s %s", typ, txn.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().Float64Var(&amount, "amount", 0, "New amount in dollars")
	cmd.Flags().StringVar(&category, "category", "", "New category name")
	cmd.Flags().StringVar(&counterparty, party, "", "New "+party+" name")
	cmd.Flags().StringVar(&method, "method", "", "New payment method")
	cmd.Flags().StringVar(&status, "status", "", "New payment status")

	return cmd
}

func deleteTransactionCmd(typ model.TransactionType) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete an %s transaction", typ),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := led.DeleteTransaction(ctx, args[0], typ); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %s %s", typ, args[0])))
			return nil
		},
	}
}
