package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// CategoryModel represents one label row of the categories table.
// Position keeps the user-defined order within a type.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      string    `gorm:"type:varchar(10);not null;index:idx_categories_type_position"`
	Name      string    `gorm:"type:varchar(50);not null"`
	Position  int       `gorm:"not null;index:idx_categories_type_position"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// CategorySetFromModels groups ordered rows into a set.
func CategorySetFromModels(models []CategoryModel) *entity.CategorySet {
	set := &entity.CategorySet{Income: []string{}, Expense: []string{}}
	for _, m := range models {
		if entity.TransactionType(m.Type) == entity.TransactionTypeIncome {
			set.Income = append(set.Income, m.Name)
		} else {
			set.Expense = append(set.Expense, m.Name)
		}
	}
	return set
}

// CategoryModelsFromSet creates one row per label, numbering positions per type.
func CategoryModelsFromSet(set *entity.CategorySet) []CategoryModel {
	now := time.Now().UTC()
	models := make([]CategoryModel, 0, len(set.Income)+len(set.Expense))
	for i, name := range set.Income {
		models = append(models, CategoryModel{ID: uuid.New(), Type: string(entity.TransactionTypeIncome), Name: name, Position: i, CreatedAt: now})
	}
	for i, name := range set.Expense {
		models = append(models, CategoryModel{ID: uuid.New(), Type: string(entity.TransactionTypeExpense), Name: name, Position: i, CreatedAt: now})
	}
	return models
}
