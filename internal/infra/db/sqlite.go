package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/finanzas-pro/backend/config"
)

// NewSQLiteConnection opens a local SQLite file. SQLite serializes writers,
// so the pool is limited to one open connection.
func NewSQLiteConnection(cfg *config.DatabaseConfig, development bool) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"), &gorm.Config{
		Logger: gormLogger(development),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	local := *cfg
	local.MaxOpenConns = 1
	local.MaxIdleConns = 1
	return configure(db, &local)
}
