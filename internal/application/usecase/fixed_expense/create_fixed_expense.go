// Package fixedexpense contains use cases for recurring expense templates.
package fixedexpense

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/notify"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// CreateFixedExpenseInput represents the input for template creation.
type CreateFixedExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Day         *int
	Category    *string
}

// FixedExpenseOutput wraps a single template.
type FixedExpenseOutput struct {
	FixedExpense *entity.FixedExpense
}

// CreateFixedExpenseUseCase handles template creation.
type CreateFixedExpenseUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
	notifier         adapter.ChangeNotifier
}

// NewCreateFixedExpenseUseCase creates a new CreateFixedExpenseUseCase instance.
func NewCreateFixedExpenseUseCase(fixedExpenseRepo adapter.FixedExpenseRepository, notifier adapter.ChangeNotifier) *CreateFixedExpenseUseCase {
	return &CreateFixedExpenseUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
		notifier:         notifier,
	}
}

// Execute validates and stores the template.
func (uc *CreateFixedExpenseUseCase) Execute(ctx context.Context, input CreateFixedExpenseInput) (*FixedExpenseOutput, error) {
	fixedExpense := entity.NewFixedExpense(input.Description, input.Amount, input.Day, input.Category)

	if err := fixedExpense.Validate(); err != nil {
		return nil, err
	}

	if err := uc.fixedExpenseRepo.Create(ctx, fixedExpense); err != nil {
		return nil, fmt.Errorf("failed to create fixed expense: %w", err)
	}

	notify.Publish(ctx, uc.notifier, adapter.CollectionFixedExpenses, adapter.OperationCreate, fixedExpense.ID.String())

	return &FixedExpenseOutput{FixedExpense: fixedExpense}, nil
}
