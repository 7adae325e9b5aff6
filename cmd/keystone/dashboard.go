package main

import (
	"github.com/spf13/cobra"

	"github.com/keystone-financial/ledger/internal/model"
	"github.com/keystone-financial/ledger/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive ledger dashboard",
		Long:  `Open a read-only terminal dashboard showing totals, recent activity, and the expense breakdown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return tui.Run(
				led.Transactions(model.TypeIncome),
				led.Transactions(model.TypeExpense),
			)
		},
	}
}
