// Package fixedexpense turns recurring expense templates into transactions and
// derives their monthly payment status.
//
// Payment status is never stored. It is recomputed from the transactions of a
// month: a transaction linked by FixedExpenseID matches first, and records that
// predate the link fall back to a description and amount match. The first
// match wins, so two legacy records with the same description and amount in
// one month cannot be told apart.
package fixedexpense

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// Process builds the paid expense that settles template with the actual amount on date.
func Process(template *entity.FixedExpense, actualAmount decimal.Decimal, date string) (*entity.Transaction, error) {
	if !actualAmount.IsPositive() {
		return nil, domainerror.NewFixedExpenseError(domainerror.ErrCodeInvalidFixedExpenseAmount, "amount must be greater than zero", domainerror.ErrInvalidFixedExpenseAmount)
	}
	if !valueobject.IsISODate(date) {
		return nil, domainerror.NewFixedExpenseError(domainerror.ErrCodeInvalidPaymentDate, "date must be formatted as YYYY-MM-DD", domainerror.ErrInvalidTransactionDate)
	}

	templateID := template.ID
	tx := entity.NewTransaction(
		template.Description,
		actualAmount,
		entity.TransactionTypeExpense,
		date,
		template.CategoryOrDefault(),
		entity.TransactionStatusPaid,
		nil,
		&templateID,
	)
	return tx, nil
}

// PaymentStatus returns the transaction paying template in ym, or nil when unpaid.
func PaymentStatus(template *entity.FixedExpense, ym valueobject.YearMonth, transactions []*entity.Transaction) *entity.Transaction {
	return findPayment(template, ym, transactions, func(t *entity.Transaction) bool {
		return t.Description == template.Description && t.Amount.Equal(template.Amount)
	})
}

// LastMonthReference returns what was paid for template in the month before ym.
// The legacy fallback ignores the amount, so a changed price still surfaces.
func LastMonthReference(template *entity.FixedExpense, ym valueobject.YearMonth, transactions []*entity.Transaction) *decimal.Decimal {
	match := findPayment(template, ym.Previous(), transactions, func(t *entity.Transaction) bool {
		return t.Description == template.Description
	})
	if match == nil {
		return nil
	}
	amount := match.Amount
	return &amount
}

// ScheduledDate returns the template day within ym, clamped to the month length.
func ScheduledDate(template *entity.FixedExpense, ym valueobject.YearMonth) string {
	return ym.Day(template.DayOrDefault())
}

func findPayment(template *entity.FixedExpense, ym valueobject.YearMonth, transactions []*entity.Transaction, legacy func(*entity.Transaction) bool) *entity.Transaction {
	for _, t := range transactions {
		if t != nil && t.FixedExpenseID != nil && *t.FixedExpenseID == template.ID && ym.Contains(t.Date) {
			return t
		}
	}
	for _, t := range transactions {
		if t != nil && ym.Contains(t.Date) && legacy(t) {
			return t
		}
	}
	return nil
}
