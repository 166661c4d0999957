// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// ListCategoriesUseCase returns the category set, seeding defaults on first use.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute loads the set.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*entity.CategorySet, error) {
	set, found, err := uc.categoryRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if found {
		return set, nil
	}

	defaults := entity.DefaultCategorySet()
	if err := uc.categoryRepo.Seed(ctx, defaults); err != nil {
		// Still serve the defaults
		slog.Warn("failed to seed default categories", "error", err)
	}
	return defaults, nil
}
