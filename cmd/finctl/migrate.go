package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/finanzas-pro/backend/internal/integration/persistence/model"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			database, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := database.AutoMigrate(model.All()...); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			slog.Info("Database migrations completed successfully")
			return nil
		},
	}
}
