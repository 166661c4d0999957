package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

// Balance is the realized balance over all transactions. Pending entries never count.
func Balance(transactions []*entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t != nil && t.IsPaid() {
			total = total.Add(t.SignedAmount())
		}
	}
	return total
}

// ProjectedBalance is the balance if every pending entry settled as recorded.
func ProjectedBalance(transactions []*entity.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t != nil {
			total = total.Add(t.SignedAmount())
		}
	}
	return total
}

// PeriodIncome sums paid income in range.
func PeriodIncome(transactions []*entity.Transaction, r entity.DateRange) decimal.Decimal {
	return sumWhere(transactions, inRangeWith(r, entity.TransactionTypeIncome, entity.TransactionStatusPaid))
}

// PeriodExpenses sums paid expenses in range.
func PeriodExpenses(transactions []*entity.Transaction, r entity.DateRange) decimal.Decimal {
	return sumWhere(transactions, inRangeWith(r, entity.TransactionTypeExpense, entity.TransactionStatusPaid))
}

// PeriodPendingIncome sums pending income in range.
func PeriodPendingIncome(transactions []*entity.Transaction, r entity.DateRange) decimal.Decimal {
	return sumWhere(transactions, inRangeWith(r, entity.TransactionTypeIncome, entity.TransactionStatusPending))
}

// PeriodPendingExpenses sums pending expenses in range.
func PeriodPendingExpenses(transactions []*entity.Transaction, r entity.DateRange) decimal.Decimal {
	return sumWhere(transactions, inRangeWith(r, entity.TransactionTypeExpense, entity.TransactionStatusPending))
}

// PreviousPeriod returns the window of the same length ending the day before r starts.
// With duration = end - start in days, it spans [start-1-duration, start-1].
func PreviousPeriod(r entity.DateRange) entity.DateRange {
	duration := r.Duration()
	prevEnd := valueobject.AddDays(r.StartDate, -1)
	return entity.DateRange{
		StartDate: valueobject.AddDays(prevEnd, -duration),
		EndDate:   prevEnd,
	}
}

// PreviousPeriodIncome sums paid income in the previous period.
func PreviousPeriodIncome(transactions []*entity.Transaction, r entity.DateRange) decimal.Decimal {
	return PeriodIncome(transactions, PreviousPeriod(r))
}

// PreviousPeriodExpenses sums paid expenses in the previous period.
func PreviousPeriodExpenses(transactions []*entity.Transaction, r entity.DateRange) decimal.Decimal {
	return PeriodExpenses(transactions, PreviousPeriod(r))
}

// ChangePercent returns the percentage change from previous to current.
// A zero previous value yields 100 when current is positive and 0 otherwise.
func ChangePercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

// SavingsRate returns savings as a percentage of income, or 0 without income.
func SavingsRate(income, expense decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(expense).Div(income).Mul(hundred).Round(2)
}
