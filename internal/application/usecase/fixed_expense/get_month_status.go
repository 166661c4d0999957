package fixedexpense

import (
	"context"
	"fmt"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	processor "github.com/finanzas-pro/backend/internal/domain/fixedexpense"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// GetMonthStatusInput selects the month. Empty means the current month.
type GetMonthStatusInput struct {
	Month string
}

// GetMonthStatusUseCase derives the payment status of every template in a month.
type GetMonthStatusUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
	transactionRepo  adapter.TransactionRepository
	clock            adapter.Clock
}

// NewGetMonthStatusUseCase creates a new GetMonthStatusUseCase instance.
func NewGetMonthStatusUseCase(
	fixedExpenseRepo adapter.FixedExpenseRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
) *GetMonthStatusUseCase {
	return &GetMonthStatusUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
		transactionRepo:  transactionRepo,
		clock:            clock,
	}
}

// Execute builds the month status.
func (uc *GetMonthStatusUseCase) Execute(ctx context.Context, input GetMonthStatusInput) (*processor.MonthStatus, error) {
	ym, err := resolveMonth(input.Month, uc.clock)
	if err != nil {
		return nil, err
	}

	templates, err := uc.fixedExpenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}

	// The previous month is needed for the last-payment hint
	transactions, err := uc.transactionRepo.FindAll(ctx, entity.TransactionFilter{
		StartDate: ym.Previous().FirstDay(),
		EndDate:   ym.LastDay(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	status := processor.BuildMonthStatus(templates, ym, transactions)
	return &status, nil
}

func resolveMonth(month string, clock adapter.Clock) (valueobject.YearMonth, error) {
	if month == "" {
		return valueobject.YearMonthOf(clock.Now()), nil
	}
	ym, err := valueobject.ParseYearMonth(month)
	if err != nil {
		return valueobject.YearMonth{}, domainerror.NewFixedExpenseError(domainerror.ErrCodeInvalidYearMonth, "month must be formatted as YYYY-MM", domainerror.ErrInvalidYearMonth)
	}
	return ym, nil
}
