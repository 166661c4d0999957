// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// DashboardRepository defines the interface for dashboard data operations.
type DashboardRepository interface {
	// GetDateRange returns the date boundaries of the stored transactions.
	GetDateRange(ctx context.Context) (*DateRange, error)
}

// DateRange represents the date boundaries of the transaction history.
type DateRange struct {
	OldestDate        *string
	NewestDate        *string
	TotalTransactions int
}

// RangeInput selects a report window. Explicit dates win over the preset;
// with neither, the current calendar month is used.
type RangeInput struct {
	StartDate string
	EndDate   string
	Preset    entity.RangePreset
}

func resolveRange(input RangeInput, clock adapter.Clock) (entity.DateRange, error) {
	switch {
	case input.StartDate != "" && input.EndDate != "":
		return entity.NewDateRange(input.StartDate, input.EndDate)
	case input.StartDate != "":
		return entity.DateRange{}, domainerror.NewDashboardError(domainerror.ErrCodeMissingEndDate, "end_date is required", domainerror.ErrMissingEndDate)
	case input.EndDate != "":
		return entity.DateRange{}, domainerror.NewDashboardError(domainerror.ErrCodeMissingStartDate, "start_date is required", domainerror.ErrMissingStartDate)
	case input.Preset != "":
		return entity.PresetRange(input.Preset, now(clock))
	default:
		return entity.CurrentMonthRange(now(clock)), nil
	}
}

func now(clock adapter.Clock) time.Time {
	if clock == nil {
		return time.Now()
	}
	return clock.Now()
}

// loadAll returns the whole collection; global metrics need every transaction.
func loadAll(ctx context.Context, repo adapter.TransactionRepository) ([]*entity.Transaction, error) {
	transactions, err := repo.FindAll(ctx, entity.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return transactions, nil
}

func parseMonth(month string, clock adapter.Clock) (valueobject.YearMonth, error) {
	if month == "" {
		return valueobject.YearMonthOf(now(clock)), nil
	}
	ym, err := valueobject.ParseYearMonth(month)
	if err != nil {
		return valueobject.YearMonth{}, domainerror.NewDashboardError(domainerror.ErrCodeInvalidDateFormat, "month must be formatted as YYYY-MM", err)
	}
	return ym, nil
}
