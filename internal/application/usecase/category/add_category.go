package category

import (
	"context"
	"fmt"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/application/usecase/notify"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// AddCategoryInput represents a label to append.
type AddCategoryInput struct {
	Type entity.TransactionType
	Name string
}

// AddCategoryUseCase appends a label to a category list. Duplicates are allowed.
type AddCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	notifier     adapter.ChangeNotifier
}

// NewAddCategoryUseCase creates a new AddCategoryUseCase instance.
func NewAddCategoryUseCase(categoryRepo adapter.CategoryRepository, notifier adapter.ChangeNotifier) *AddCategoryUseCase {
	return &AddCategoryUseCase{
		categoryRepo: categoryRepo,
		notifier:     notifier,
	}
}

// Execute appends the label and returns the resulting set.
func (uc *AddCategoryUseCase) Execute(ctx context.Context, input AddCategoryInput) (*entity.CategorySet, error) {
	name, err := entity.ValidateCategory(input.Type, input.Name)
	if err != nil {
		return nil, err
	}

	set, err := ensureSeeded(ctx, uc.categoryRepo)
	if err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Append(ctx, input.Type, name); err != nil {
		return nil, fmt.Errorf("failed to add category: %w", err)
	}
	_ = set.Add(input.Type, name)

	notify.Publish(ctx, uc.notifier, adapter.CollectionCategories, adapter.OperationCreate, string(input.Type)+":"+name)

	return set, nil
}

// ensureSeeded stores the defaults before the first mutation so they are not lost.
func ensureSeeded(ctx context.Context, repo adapter.CategoryRepository) (*entity.CategorySet, error) {
	set, found, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if found {
		return set, nil
	}

	set = entity.DefaultCategorySet()
	if err := repo.Seed(ctx, set); err != nil {
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}
	return set, nil
}
