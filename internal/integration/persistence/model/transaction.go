// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Date is an ISO string so lexicographic and chronological order agree.
type TransactionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description    string          `gorm:"type:varchar(255);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type           string          `gorm:"type:varchar(10);not null;index"`
	Date           string          `gorm:"type:varchar(10);not null;index"`
	Category       string          `gorm:"type:varchar(50);not null;default:'Otros'"`
	Status         string          `gorm:"type:varchar(10);not null;default:'paid'"`
	PaymentMethod  *string         `gorm:"type:varchar(50)"`
	FixedExpenseID *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:             m.ID,
		Description:    m.Description,
		Amount:         m.Amount,
		Type:           entity.TransactionType(m.Type),
		Date:           m.Date,
		Category:       m.Category,
		Status:         entity.TransactionStatus(m.Status),
		PaymentMethod:  m.PaymentMethod,
		FixedExpenseID: m.FixedExpenseID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:             transaction.ID,
		Description:    transaction.Description,
		Amount:         transaction.Amount,
		Type:           string(transaction.Type),
		Date:           transaction.Date,
		Category:       transaction.Category,
		Status:         string(transaction.Status),
		PaymentMethod:  transaction.PaymentMethod,
		FixedExpenseID: transaction.FixedExpenseID,
		CreatedAt:      transaction.CreatedAt,
		UpdatedAt:      transaction.UpdatedAt,
	}
}
