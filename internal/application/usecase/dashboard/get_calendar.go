package dashboard

import (
	"context"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/aggregation"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// GetCalendarInput selects the month. Empty means the current month.
type GetCalendarInput struct {
	Month string
}

// GetCalendarUseCase builds the day grid of a month.
type GetCalendarUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewGetCalendarUseCase creates a new GetCalendarUseCase instance.
func NewGetCalendarUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute builds the calendar.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, input GetCalendarInput) (*aggregation.Calendar, error) {
	ym, err := parseMonth(input.Month, uc.clock)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindAll(ctx, entity.TransactionFilter{StartDate: ym.FirstDay(), EndDate: ym.LastDay()})
	if err != nil {
		return nil, err
	}

	calendar := aggregation.CalendarMonth(transactions, ym)
	return &calendar, nil
}
