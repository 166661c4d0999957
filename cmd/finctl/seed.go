package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	"github.com/finanzas-pro/backend/internal/integration/persistence"
)

func seedCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-categories",
		Short: "Store the default category labels when none exist",
		Long: `Writes the default income and expense labels to an empty category table.
An existing category set is left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			repo := persistence.NewCategoryRepository(database.DB())
			set, found, err := repo.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}
			if found {
				slog.Info("Categories already stored, nothing to seed")
			} else {
				set = entity.DefaultCategorySet()
				if err := repo.Seed(cmd.Context(), set); err != nil {
					return fmt.Errorf("failed to seed categories: %w", err)
				}
				slog.Info("Default categories stored")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "income:  %v\n", set.Income)
			fmt.Fprintf(out, "expense: %v\n", set.Expense)
			return nil
		},
	}
}
