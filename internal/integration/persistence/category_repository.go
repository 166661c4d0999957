package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finanzas-pro/backend/internal/application/adapter"
	"github.com/finanzas-pro/backend/internal/domain/entity"
	"github.com/finanzas-pro/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Load returns the stored set in position order.
func (r *categoryRepository) Load(ctx context.Context) (*entity.CategorySet, bool, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Order("type ASC, position ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if len(categoryModels) == 0 {
		return nil, false, nil
	}
	return model.CategorySetFromModels(categoryModels), true, nil
}

// Seed stores the set when the table is empty.
func (r *categoryRepository) Seed(ctx context.Context, set *entity.CategorySet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		models := model.CategoryModelsFromSet(set)
		if len(models) == 0 {
			return nil
		}
		return tx.Create(&models).Error
	})
}

// Append adds a label after the last one of its type.
func (r *categoryRepository) Append(ctx context.Context, categoryType entity.TransactionType, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		err := tx.Model(&model.CategoryModel{}).
			Where("type = ?", string(categoryType)).
			Select("COALESCE(MAX(position) + 1, 0)").
			Scan(&next).Error
		if err != nil {
			return err
		}

		return tx.Create(&model.CategoryModel{
			ID:        uuid.New(),
			Type:      string(categoryType),
			Name:      name,
			Position:  next,
			CreatedAt: time.Now().UTC(),
		}).Error
	})
}

// Remove deletes every label of the type equal to name.
func (r *categoryRepository) Remove(ctx context.Context, categoryType entity.TransactionType, name string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("type = ? AND name = ?", string(categoryType), name).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
