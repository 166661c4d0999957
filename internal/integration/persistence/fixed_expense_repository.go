package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/integration/persistence/model"
)

// fixedExpenseRepository implements the adapter.FixedExpenseRepository interface.
type fixedExpenseRepository struct {
	db *gorm.DB
}

// NewFixedExpenseRepository creates a new fixed expense repository instance.
func NewFixedExpenseRepository(db *gorm.DB) adapter.FixedExpenseRepository {
	return &fixedExpenseRepository{
		db: db,
	}
}

// Create creates a new template in the database.
func (r *fixedExpenseRepository) Create(ctx context.Context, fixedExpense *entity.FixedExpense) error {
	return r.db.WithContext(ctx).Create(model.FixedExpenseFromEntity(fixedExpense)).Error
}

// FindByID retrieves a template by its ID.
func (r *fixedExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error) {
	var fixedExpenseModel model.FixedExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&fixedExpenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFixedExpenseNotFound
		}
		return nil, result.Error
	}
	return fixedExpenseModel.ToEntity(), nil
}

// FindAll retrieves every template ordered by day of month, then description.
// Templates without a day sort as day 1.
func (r *fixedExpenseRepository) FindAll(ctx context.Context) ([]*entity.FixedExpense, error) {
	var fixedExpenseModels []model.FixedExpenseModel
	result := r.db.WithContext(ctx).
		Order("COALESCE(day, 1) ASC, description ASC").
		Find(&fixedExpenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	fixedExpenses := make([]*entity.FixedExpense, len(fixedExpenseModels))
	for i := range fixedExpenseModels {
		fixedExpenses[i] = fixedExpenseModels[i].ToEntity()
	}
	return fixedExpenses, nil
}

// Update saves the current state of a template, nil columns included.
func (r *fixedExpenseRepository) Update(ctx context.Context, fixedExpense *entity.FixedExpense) error {
	result := r.db.WithContext(ctx).
		Model(&model.FixedExpenseModel{}).
		Where("id = ?", fixedExpense.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model.FixedExpenseFromEntity(fixedExpense))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFixedExpenseNotFound
	}
	return nil
}

// Delete permanently removes a template.
func (r *fixedExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FixedExpenseModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFixedExpenseNotFound
	}
	return nil
}
