// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid checks if the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// TransactionStatus tells whether a transaction has a realized cash effect.
type TransactionStatus string

const (
	TransactionStatusPaid    TransactionStatus = "paid"
	TransactionStatusPending TransactionStatus = "pending"
)

// IsValid checks if the status is one of the known values.
func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusPaid || s == TransactionStatusPending
}

// Toggle returns the opposite status.
func (s TransactionStatus) Toggle() TransactionStatus {
	if s == TransactionStatusPaid {
		return TransactionStatusPending
	}
	return TransactionStatusPaid
}

// DefaultCategory is the label used when a transaction has no category.
const DefaultCategory = "Otros"

// MaxDescriptionLength is the longest description accepted for transactions and templates.
const MaxDescriptionLength = 255

// Transaction represents a financial transaction in the Finanzas Pro system.
type Transaction struct {
	ID             uuid.UUID
	Description    string
	Amount         decimal.Decimal // Always positive, Type carries the sign
	Type           TransactionType
	Date           string // YYYY-MM-DD
	Category       string
	Status         TransactionStatus
	PaymentMethod  *string    // Absent for legacy records
	FixedExpenseID *uuid.UUID // Set when generated from a fixed expense template
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewTransaction creates a new Transaction entity.
// A blank category becomes DefaultCategory and an empty status becomes paid.
func NewTransaction(
	description string,
	amount decimal.Decimal,
	transactionType TransactionType,
	date string,
	category string,
	status TransactionStatus,
	paymentMethod *string,
	fixedExpenseID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	if strings.TrimSpace(category) == "" {
		category = DefaultCategory
	}
	if status == "" {
		status = TransactionStatusPaid
	}

	return &Transaction{
		ID:             uuid.New(),
		Description:    strings.TrimSpace(description),
		Amount:         amount,
		Type:           transactionType,
		Date:           date,
		Category:       category,
		Status:         status,
		PaymentMethod:  normalizeOptional(paymentMethod),
		FixedExpenseID: fixedExpenseID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Validate rejects records that must never enter the aggregation pipeline.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return domainerror.NewTransactionError(domainerror.ErrCodeEmptyDescription, "description is required", domainerror.ErrEmptyDescription)
	}
	if len(t.Description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(domainerror.ErrCodeDescriptionTooLong, "description must be 255 characters or less", domainerror.ErrDescriptionTooLong)
	}
	if !t.Amount.IsPositive() {
		return domainerror.NewTransactionError(domainerror.ErrCodeInvalidTransactionAmount, "amount must be greater than zero", domainerror.ErrInvalidTransactionAmount)
	}
	if !t.Type.IsValid() {
		return domainerror.NewTransactionError(domainerror.ErrCodeInvalidTransactionType, "type must be 'income' or 'expense'", domainerror.ErrInvalidTransactionType)
	}
	if !t.Status.IsValid() {
		return domainerror.NewTransactionError(domainerror.ErrCodeInvalidTransactionStatus, "status must be 'paid' or 'pending'", domainerror.ErrInvalidTransactionStatus)
	}
	if !valueobject.IsISODate(t.Date) {
		return domainerror.NewTransactionError(domainerror.ErrCodeInvalidTransactionDate, "date must be formatted as YYYY-MM-DD", domainerror.ErrInvalidTransactionDate)
	}
	return nil
}

// IsPaid reports whether the transaction has a realized cash effect.
func (t *Transaction) IsPaid() bool {
	return t.Status == TransactionStatusPaid
}

// IsIncome reports whether the transaction is an income.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// SignedAmount returns the amount with income positive and expense negative.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// CategoryOrDefault returns the category, or DefaultCategory when blank.
func (t *Transaction) CategoryOrDefault() string {
	if strings.TrimSpace(t.Category) == "" {
		return DefaultCategory
	}
	return t.Category
}

// PaymentMethodValue returns the payment method, or "" when absent.
func (t *Transaction) PaymentMethodValue() string {
	if t.PaymentMethod == nil {
		return ""
	}
	return *t.PaymentMethod
}

// TransactionFilter narrows a transaction listing. Zero values mean no constraint.
type TransactionFilter struct {
	StartDate string
	EndDate   string
	Type      TransactionType
	Status    TransactionStatus
	Category  string
}

// Matches reports whether the transaction satisfies every set constraint.
func (f TransactionFilter) Matches(t *Transaction) bool {
	if f.StartDate != "" && t.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && t.Date > f.EndDate {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Category != "" && t.CategoryOrDefault() != f.Category {
		return false
	}
	return true
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
