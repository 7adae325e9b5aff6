package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keystone-financial/ledger/internal/cli"
	"github.com/keystone-financial/ledger/internal/model"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the ledger to its defaults",
		Long: `Reset deletes every transaction and restores the default category lists.

This is a destructive operation and cannot be undone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			income := len(led.Transactions(model.TypeIncome))
			expenses := len(led.Transactions(model.TypeExpense))

			if !force {
				fmt.Printf("This will delete %d income and %d expense transactions and restore the default categories.\n",
					income, expenses)
				fmt.Print("Are you sure you want to continue? [y/N]: ")

				var response string
				if _, err := fmt.Scanln(&response); err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				if response != "y" && response != "Y" {
					fmt.Println("Reset canceled.")
					return nil
				}
			}

			if err := led.ResetAll(ctx); err != nil {
				return fmt.Errorf("failed to reset ledger: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Reset complete, removed %d transactions", income+expenses)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
