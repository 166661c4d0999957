package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
)

// SeriesPoint is one bucket of the evolution series.
type SeriesPoint struct {
	Key     string
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
}

// Series is an ordered, gap-free evolution series.
type Series struct {
	Granularity Granularity
	Points      []SeriesPoint
}

// EvolutionSeries buckets paid income and expense over the range.
// Only transactions inside the range count, including in partial month buckets.
func EvolutionSeries(transactions []*entity.Transaction, r entity.DateRange) Series {
	granularity := GranularityFor(r)
	periods := GeneratePeriodSeries(r, granularity)

	type totals struct{ income, expense decimal.Decimal }
	byKey := make(map[string]*totals, len(periods))
	for _, p := range periods {
		byKey[p.Key] = &totals{income: decimal.Zero, expense: decimal.Zero}
	}

	for _, t := range transactions {
		if t == nil || !t.IsPaid() || !r.Contains(t.Date) {
			continue
		}
		bucket, ok := byKey[GetPeriodKeyForDate(t.Date, granularity)]
		if !ok {
			continue
		}
		if t.IsIncome() {
			bucket.income = bucket.income.Add(t.Amount)
		} else {
			bucket.expense = bucket.expense.Add(t.Amount)
		}
	}

	points := make([]SeriesPoint, 0, len(periods))
	for _, p := range periods {
		bucket := byKey[p.Key]
		points = append(points, SeriesPoint{
			Key:     p.Key,
			Label:   p.PeriodLabel,
			Income:  roundMoney(bucket.income),
			Expense: roundMoney(bucket.expense),
			Profit:  roundMoney(bucket.income.Sub(bucket.expense)),
		})
	}

	return Series{Granularity: granularity, Points: points}
}
