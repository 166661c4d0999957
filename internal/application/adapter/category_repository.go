package adapter

import (
	"context"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category label persistence.
type CategoryRepository interface {
	// Load returns the stored set. Found is false when nothing has been stored yet.
	Load(ctx context.Context) (set *entity.CategorySet, found bool, err error)

	// Seed stores the given set. It is a no-op when labels already exist.
	Seed(ctx context.Context, set *entity.CategorySet) error

	// Append adds a label at the end of its list.
	Append(ctx context.Context, categoryType entity.TransactionType, name string) error

	// Remove deletes every label equal to name and returns how many were deleted.
	Remove(ctx context.Context, categoryType entity.TransactionType, name string) (int64, error)
}
