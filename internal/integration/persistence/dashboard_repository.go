package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/finanzas-pro/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-pro/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetDateRange returns the date range of the stored transactions.
func (r *dashboardRepository) GetDateRange(ctx context.Context) (*dashboard.DateRange, error) {
	var result struct {
		OldestDate *string `gorm:"column:oldest_date"`
		NewestDate *string `gorm:"column:newest_date"`
		Total      int     `gorm:"column:total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("MIN(date) as oldest_date, MAX(date) as newest_date, COUNT(*) as total").
		Scan(&result).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	return &dashboard.DateRange{
		OldestDate:        result.OldestDate,
		NewestDate:        result.NewestDate,
		TotalTransactions: result.Total,
	}, nil
}
