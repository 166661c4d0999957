package fixedexpense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/notify"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

// UpdateFixedExpenseInput carries the template id and the fields to change.
type UpdateFixedExpenseInput struct {
	ID     uuid.UUID
	Update entity.FixedExpenseUpdate
}

// UpdateFixedExpenseUseCase applies a partial update to a template.
type UpdateFixedExpenseUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
	notifier         adapter.ChangeNotifier
}

// NewUpdateFixedExpenseUseCase creates a new UpdateFixedExpenseUseCase instance.
func NewUpdateFixedExpenseUseCase(fixedExpenseRepo adapter.FixedExpenseRepository, notifier adapter.ChangeNotifier) *UpdateFixedExpenseUseCase {
	return &UpdateFixedExpenseUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
		notifier:         notifier,
	}
}

// Execute merges the update and saves the template.
// Transactions already generated from the template keep their values.
func (uc *UpdateFixedExpenseUseCase) Execute(ctx context.Context, input UpdateFixedExpenseInput) (*FixedExpenseOutput, error) {
	fixedExpense, err := findFixedExpense(ctx, uc.fixedExpenseRepo, input.ID)
	if err != nil {
		return nil, err
	}

	input.Update.Apply(fixedExpense)

	if err := fixedExpense.Validate(); err != nil {
		return nil, err
	}

	if err := uc.fixedExpenseRepo.Update(ctx, fixedExpense); err != nil {
		return nil, fmt.Errorf("failed to update fixed expense: %w", err)
	}

	notify.Publish(ctx, uc.notifier, adapter.CollectionFixedExpenses, adapter.OperationUpdate, fixedExpense.ID.String())

	return &FixedExpenseOutput{FixedExpense: fixedExpense}, nil
}

func findFixedExpense(ctx context.Context, repo adapter.FixedExpenseRepository, id uuid.UUID) (*entity.FixedExpense, error) {
	fixedExpense, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrFixedExpenseNotFound) {
			return nil, domainerror.NewFixedExpenseError(
				domainerror.ErrCodeFixedExpenseNotFound,
				"fixed expense not found",
				domainerror.ErrFixedExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find fixed expense: %w", err)
	}
	return fixedExpense, nil
}
