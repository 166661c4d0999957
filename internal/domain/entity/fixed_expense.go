package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
)

// FixedExpenseCategory is used for processed templates without a category.
const FixedExpenseCategory = "Fijos"

// FixedExpense is a recurring obligation template. It is not a transaction;
// paying it for a month produces one.
type FixedExpense struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal // Expected value, the actual payment may differ
	Day         *int            // Day of month for scheduling, 1-31
	Category    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFixedExpense creates a new FixedExpense entity.
func NewFixedExpense(description string, amount decimal.Decimal, day *int, category *string) *FixedExpense {
	now := time.Now().UTC()

	return &FixedExpense{
		ID:          uuid.New(),
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Day:         day,
		Category:    normalizeOptional(category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks the template fields.
func (f *FixedExpense) Validate() error {
	if strings.TrimSpace(f.Description) == "" {
		return domainerror.NewFixedExpenseError(domainerror.ErrCodeFixedExpenseEmptyDescription, "description is required", domainerror.ErrEmptyDescription)
	}
	if len(f.Description) > MaxDescriptionLength {
		return domainerror.NewFixedExpenseError(domainerror.ErrCodeFixedExpenseDescriptionTooLong, "description must be 255 characters or less", domainerror.ErrDescriptionTooLong)
	}
	if !f.Amount.IsPositive() {
		return domainerror.NewFixedExpenseError(domainerror.ErrCodeInvalidFixedExpenseAmount, "amount must be greater than zero", domainerror.ErrInvalidFixedExpenseAmount)
	}
	if f.Day != nil && (*f.Day < 1 || *f.Day > 31) {
		return domainerror.NewFixedExpenseError(domainerror.ErrCodeInvalidFixedExpenseDay, "day must be between 1 and 31", domainerror.ErrInvalidFixedExpenseDay)
	}
	return nil
}

// CategoryOrDefault returns the template category, or FixedExpenseCategory when absent.
func (f *FixedExpense) CategoryOrDefault() string {
	if f.Category == nil || strings.TrimSpace(*f.Category) == "" {
		return FixedExpenseCategory
	}
	return *f.Category
}

// DayOrDefault returns the scheduling day, or 1 when absent.
func (f *FixedExpense) DayOrDefault() int {
	if f.Day == nil {
		return 1
	}
	return *f.Day
}

// FixedExpenseUpdate holds a partial update. Nil fields are left untouched.
type FixedExpenseUpdate struct {
	Description *string
	Amount      *decimal.Decimal
	Day         *int
	ClearDay    bool
	Category    *string
}

// Apply merges the update into the template.
func (u FixedExpenseUpdate) Apply(f *FixedExpense) {
	if u.Description != nil {
		f.Description = strings.TrimSpace(*u.Description)
	}
	if u.Amount != nil {
		f.Amount = *u.Amount
	}
	if u.ClearDay {
		f.Day = nil
	} else if u.Day != nil {
		day := *u.Day
		f.Day = &day
	}
	if u.Category != nil {
		f.Category = normalizeOptional(u.Category)
	}
	f.UpdatedAt = time.Now().UTC()
}
