// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves transactions matching the filter, newest date first.
	FindAll(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// Replace overwrites every field of an existing transaction. Last write wins.
	Replace(ctx context.Context, transaction *entity.Transaction) error

	// Delete permanently removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
