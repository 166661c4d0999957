package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// FixedExpenseModel represents the fixed_expenses table in the database.
type FixedExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Day         *int            `gorm:"type:integer"`
	Category    *string         `gorm:"type:varchar(50)"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FixedExpenseModel.
func (FixedExpenseModel) TableName() string {
	return "fixed_expenses"
}

// ToEntity converts a FixedExpenseModel to a domain FixedExpense entity.
func (m *FixedExpenseModel) ToEntity() *entity.FixedExpense {
	return &entity.FixedExpense{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Day:         m.Day,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FixedExpenseFromEntity creates a FixedExpenseModel from a domain FixedExpense entity.
func FixedExpenseFromEntity(fixedExpense *entity.FixedExpense) *FixedExpenseModel {
	return &FixedExpenseModel{
		ID:          fixedExpense.ID,
		Description: fixedExpense.Description,
		Amount:      fixedExpense.Amount,
		Day:         fixedExpense.Day,
		Category:    fixedExpense.Category,
		CreatedAt:   fixedExpense.CreatedAt,
		UpdatedAt:   fixedExpense.UpdatedAt,
	}
}
