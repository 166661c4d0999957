package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// FixedExpenseRepository defines the interface for fixed expense template persistence.
type FixedExpenseRepository interface {
	// Create creates a new template.
	Create(ctx context.Context, fixedExpense *entity.FixedExpense) error

	// FindByID retrieves a template by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error)

	// FindAll retrieves every template ordered by day of month, then description.
	FindAll(ctx context.Context) ([]*entity.FixedExpense, error)

	// Update saves the current state of a template.
	Update(ctx context.Context, fixedExpense *entity.FixedExpense) error

	// Delete permanently removes a template. Transactions generated from it are kept.
	Delete(ctx context.Context, id uuid.UUID) error
}
