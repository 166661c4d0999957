// Package main is finctl, the Finanzas Pro admin CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/finanzas-pro/backend/config"
	"github.com/finanzas-pro/backend/internal/infra/db"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "finctl",
		Short: "Finanzas Pro administration tool",
		Long: `finctl runs maintenance tasks against the Finanzas Pro database:
schema migration, category seeding and quick reports without the API.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./finctl.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("db-driver", "", "database driver (postgres, sqlite)")
	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL connection URL")
	rootCmd.PersistentFlags().String("sqlite-path", "", "SQLite database file")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("database.driver", rootCmd.PersistentFlags().Lookup("db-driver"))
	_ = viper.BindPFlag("database.url", rootCmd.PersistentFlags().Lookup("database-url"))
	_ = viper.BindPFlag("database.sqlite_path", rootCmd.PersistentFlags().Lookup("sqlite-path"))

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCategoriesCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(fixedStatusCmd())
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("finctl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FINCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return setupLogging(viper.GetString("logging.level"))
}

func setupLogging(level string) error {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "", "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", level)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})))
	return nil
}

// loadConfig overlays viper settings (flags, FINCTL_* env, config file) onto
// the environment configuration the API uses.
func loadConfig() *config.Config {
	cfg := config.Load()
	if v := viper.GetString("database.driver"); v != "" {
		cfg.Database.Driver = v
	}
	if v := viper.GetString("database.url"); v != "" {
		cfg.Database.URL = v
	}
	if v := viper.GetString("database.sqlite_path"); v != "" {
		cfg.Database.SQLitePath = v
	}
	return cfg
}

func openDatabase() (*db.Database, error) {
	cfg := loadConfig()
	database, err := db.Open(&cfg.Database, viper.GetString("logging.level") == "debug")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}
