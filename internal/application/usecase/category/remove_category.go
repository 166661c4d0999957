package category

import (
	"context"
	"fmt"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/notify"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

// RemoveCategoryInput represents a label to remove.
type RemoveCategoryInput struct {
	Type entity.TransactionType
	Name string
}

// RemoveCategoryUseCase drops every exact match of a label.
// Transactions tagged with it are left untouched.
type RemoveCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	notifier     adapter.ChangeNotifier
}

// NewRemoveCategoryUseCase creates a new RemoveCategoryUseCase instance.
func NewRemoveCategoryUseCase(categoryRepo adapter.CategoryRepository, notifier adapter.ChangeNotifier) *RemoveCategoryUseCase {
	return &RemoveCategoryUseCase{
		categoryRepo: categoryRepo,
		notifier:     notifier,
	}
}

// Execute removes the label and returns the resulting set. Removing an
// absent label is not an error.
func (uc *RemoveCategoryUseCase) Execute(ctx context.Context, input RemoveCategoryInput) (*entity.CategorySet, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewCategoryError(domainerror.ErrCodeInvalidCategoryType, "type must be 'income' or 'expense'", domainerror.ErrInvalidCategoryType)
	}

	set, err := ensureSeeded(ctx, uc.categoryRepo)
	if err != nil {
		return nil, err
	}

	removed, err := uc.categoryRepo.Remove(ctx, input.Type, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to remove category: %w", err)
	}
	set.Remove(input.Type, input.Name)

	if removed > 0 {
		notify.Publish(ctx, uc.notifier, adapter.CollectionCategories, adapter.OperationDelete, string(input.Type)+":"+input.Name)
	}

	return set, nil
}
