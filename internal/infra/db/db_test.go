package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finanzas-pro/backend/config"
	"github.com/finanzas-pro/backend/internal/integration/persistence/model"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "finanzas.db"),
	}

	database, err := Open(cfg, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, database.AutoMigrate(model.All()...))
	assert.True(t, database.HealthCheck(context.Background()))
	assert.True(t, database.DB().Migrator().HasTable(&model.TransactionModel{}))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "mysql"}, false)
	assert.Error(t, err)
}
