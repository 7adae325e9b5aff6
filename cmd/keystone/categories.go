package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/keystone-financial/ledger/internal/cli"
	"github.com/keystone-financial/ledger/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
		Long:  `List, add, and delete the categories used to organize income and expenses.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())
	cmd.AddCommand(setCategoriesCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n", "ID", "Name", "Type")
			for _, typ := range []model.TransactionType{model.TypeIncome, model.TypeExpense} {
				for _, cat := range led.Categories(typ) {
					fmt.Fprintf(w, "%s\t%s\t%s\n", cat.ID, cat.Name, cat.Type)
				}
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Long:  `Create a new category. Names are unique per type, ignoring case.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			typ, err := parseTransactionType(typeFlag)
			if err != nil {
				return err
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cat, err := led.AddCategory(ctx, typ, args[0])
			if err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}
			if cat == nil {
				fmt.Println(cli.FormatWarning("Category name is empty, nothing added."))
				return nil
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s category %q (ID: %s)", typ, cat.Name, cat.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", string(model.TypeExpense), "Category type (income or expense)")

	return cmd
}

func setCategoriesCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "set <name> [name...]",
		Short: "Replace the category list wholesale",
		Long: `Replace every category of the given type with the names provided.
Existing transactions keep the category names they were recorded with.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			typ, err := parseTransactionType(typeFlag)
			if err != nil {
				return err
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cats := make([]model.Category, 0, len(args))
			for _, name := range args {
				cats = append(cats, model.Category{
					ID:   uuid.NewString(),
					Name: name,
					Type: typ,
				})
			}

			if err := led.UpdateCategories(ctx, cats, typ); err != nil {
				return fmt.Errorf("failed to set categories: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Set %d %s categories", len(cats), typ)))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", string(model.TypeExpense), "Category type (income or expense)")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category by ID. Transactions keep the category name they
were recorded with.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			typ, err := parseTransactionType(typeFlag)
			if err != nil {
				return err
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := led.RemoveCategory(ctx, typ, args[0]); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %s category %s", typ, args[0])))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", string(model.TypeExpense), "Category type (income or expense)")

	return cmd
}
