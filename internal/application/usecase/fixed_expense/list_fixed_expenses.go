package fixedexpense

import (
	"context"
	"fmt"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// ListFixedExpensesUseCase lists every template.
type ListFixedExpensesUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
}

// NewListFixedExpensesUseCase creates a new ListFixedExpensesUseCase instance.
func NewListFixedExpensesUseCase(fixedExpenseRepo adapter.FixedExpenseRepository) *ListFixedExpensesUseCase {
	return &ListFixedExpensesUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
	}
}

// Execute returns the templates ordered by day of month.
func (uc *ListFixedExpensesUseCase) Execute(ctx context.Context) ([]*entity.FixedExpense, error) {
	fixedExpenses, err := uc.fixedExpenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}
	return fixedExpenses, nil
}
