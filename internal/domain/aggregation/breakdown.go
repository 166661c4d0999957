package aggregation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// Payment method labels with special meaning in breakdowns.
const (
	CashPaymentMethod        = "Efectivo"
	UnspecifiedPaymentMethod = "Sin especificar"
)

// KnownPaymentMethods is the display order of the fixed payment-method breakdown.
var KnownPaymentMethods = []string{"Efectivo", "Tarjeta", "Transferencia", "Bizum", "Web"}

// Slice is one named group of a breakdown.
type Slice struct {
	Name  string
	Value decimal.Decimal
}

// CashSplit separates cash from every other payment method, absent methods included.
type CashSplit struct {
	Cash  decimal.Decimal
	Other decimal.Decimal
}

// CategoryBreakdown groups paid transactions of txType in range by category.
// Blank categories fall under entity.DefaultCategory. Sorted by value descending.
func CategoryBreakdown(transactions []*entity.Transaction, r entity.DateRange, txType entity.TransactionType) []Slice {
	return groupPaid(transactions, r, txType, func(t *entity.Transaction) string {
		return t.CategoryOrDefault()
	})
}

// MethodBreakdown groups paid transactions of txType in range by payment method.
// Absent methods fall under UnspecifiedPaymentMethod. Sorted by value descending.
func MethodBreakdown(transactions []*entity.Transaction, r entity.DateRange, txType entity.TransactionType) []Slice {
	return groupPaid(transactions, r, txType, func(t *entity.Transaction) string {
		if method := t.PaymentMethodValue(); method != "" {
			return method
		}
		return UnspecifiedPaymentMethod
	})
}

// KnownMethodBreakdown sums paid transactions per known payment method, in
// KnownPaymentMethods order, skipping methods with no amount.
func KnownMethodBreakdown(transactions []*entity.Transaction, r entity.DateRange, txType entity.TransactionType) []Slice {
	totals := make(map[string]decimal.Decimal, len(KnownPaymentMethods))
	for _, t := range transactions {
		if t == nil || !t.IsPaid() || t.Type != txType || !r.Contains(t.Date) {
			continue
		}
		method := t.PaymentMethodValue()
		totals[method] = totals[method].Add(t.Amount)
	}

	result := make([]Slice, 0, len(KnownPaymentMethods))
	for _, method := range KnownPaymentMethods {
		if value, ok := totals[method]; ok && !value.IsZero() {
			result = append(result, Slice{Name: method, Value: roundMoney(value)})
		}
	}
	return result
}

// SplitByCash sums paid transactions of txType in range into cash and everything else.
func SplitByCash(transactions []*entity.Transaction, r entity.DateRange, txType entity.TransactionType) CashSplit {
	split := CashSplit{Cash: decimal.Zero, Other: decimal.Zero}
	for _, t := range transactions {
		if t == nil || !t.IsPaid() || t.Type != txType || !r.Contains(t.Date) {
			continue
		}
		if t.PaymentMethodValue() == CashPaymentMethod {
			split.Cash = split.Cash.Add(t.Amount)
		} else {
			split.Other = split.Other.Add(t.Amount)
		}
	}
	split.Cash = roundMoney(split.Cash)
	split.Other = roundMoney(split.Other)
	return split
}

// TopExpenses returns up to n paid expenses in range, largest amount first.
func TopExpenses(transactions []*entity.Transaction, r entity.DateRange, n int) []*entity.Transaction {
	if n <= 0 {
		return []*entity.Transaction{}
	}

	expenses := make([]*entity.Transaction, 0)
	for _, t := range transactions {
		if t != nil && t.IsPaid() && t.Type == entity.TransactionTypeExpense && r.Contains(t.Date) {
			expenses = append(expenses, t)
		}
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount.GreaterThan(expenses[j].Amount)
	})

	if len(expenses) > n {
		expenses = expenses[:n]
	}
	return expenses
}

func groupPaid(transactions []*entity.Transaction, r entity.DateRange, txType entity.TransactionType, key func(*entity.Transaction) string) []Slice {
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t == nil || !t.IsPaid() || t.Type != txType || !r.Contains(t.Date) {
			continue
		}
		name := key(t)
		totals[name] = totals[name].Add(t.Amount)
	}

	result := make([]Slice, 0, len(totals))
	for name, value := range totals {
		result = append(result, Slice{Name: name, Value: roundMoney(value)})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Value.Equal(result[j].Value) {
			return result[i].Value.GreaterThan(result[j].Value)
		}
		return result[i].Name < result[j].Name
	})
	return result
}
