package fixedexpense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/notify"
)

// DeleteFixedExpenseInput identifies the template to delete.
type DeleteFixedExpenseInput struct {
	ID uuid.UUID
}

// DeleteFixedExpenseUseCase removes a template.
type DeleteFixedExpenseUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
	notifier         adapter.ChangeNotifier
}

// NewDeleteFixedExpenseUseCase creates a new DeleteFixedExpenseUseCase instance.
func NewDeleteFixedExpenseUseCase(fixedExpenseRepo adapter.FixedExpenseRepository, notifier adapter.ChangeNotifier) *DeleteFixedExpenseUseCase {
	return &DeleteFixedExpenseUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
		notifier:         notifier,
	}
}

// Execute deletes the template. Payments already made stay as ordinary transactions.
func (uc *DeleteFixedExpenseUseCase) Execute(ctx context.Context, input DeleteFixedExpenseInput) error {
	if _, err := findFixedExpense(ctx, uc.fixedExpenseRepo, input.ID); err != nil {
		return err
	}

	if err := uc.fixedExpenseRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete fixed expense: %w", err)
	}

	notify.Publish(ctx, uc.notifier, adapter.CollectionFixedExpenses, adapter.OperationDelete, input.ID.String())
	return nil
}
