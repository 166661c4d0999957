// Package aggregation is the financial aggregation engine.
//
// Every function is pure: it reads the transactions it is given and returns
// derived values without I/O or shared state, so callers may invoke it
// concurrently and repeatedly. All functions are total over valid input;
// empty lists and reversed ranges produce zero values or empty series.
package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// FilterByRange keeps transactions whose date lies within the inclusive range.
// Dates are compared as YYYY-MM-DD strings.
func FilterByRange(transactions []*entity.Transaction, r entity.DateRange) []*entity.Transaction {
	filtered := make([]*entity.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t != nil && r.Contains(t.Date) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func sumWhere(transactions []*entity.Transaction, keep func(*entity.Transaction) bool) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t != nil && keep(t) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

func inRangeWith(r entity.DateRange, txType entity.TransactionType, status entity.TransactionStatus) func(*entity.Transaction) bool {
	return func(t *entity.Transaction) bool {
		return t.Type == txType && t.Status == status && r.Contains(t.Date)
	}
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
