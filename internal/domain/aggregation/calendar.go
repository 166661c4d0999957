package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// CalendarDay holds the movements of one day.
type CalendarDay struct {
	Date         string
	Weekday      time.Weekday
	Income       decimal.Decimal
	Expense      decimal.Decimal
	Balance      decimal.Decimal
	Transactions []*entity.Transaction
}

// Calendar is a month grid of daily totals.
// Unlike period metrics it counts pending entries too, so planned movements show on their day.
type Calendar struct {
	Month   string
	Days    []CalendarDay
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// CalendarMonth builds one CalendarDay for every day of ym.
func CalendarMonth(transactions []*entity.Transaction, ym valueobject.YearMonth) Calendar {
	days := make([]CalendarDay, ym.Days())
	for i := range days {
		date := ym.Day(i + 1)
		weekday := time.Date(ym.Year, ym.Month, i+1, 0, 0, 0, 0, time.UTC).Weekday()
		days[i] = CalendarDay{
			Date:         date,
			Weekday:      weekday,
			Income:       decimal.Zero,
			Expense:      decimal.Zero,
			Transactions: []*entity.Transaction{},
		}
	}

	calendar := Calendar{Month: ym.String(), Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range transactions {
		if t == nil || !ym.Contains(t.Date) {
			continue
		}
		d, err := valueobject.ParseISODate(t.Date)
		if err != nil {
			continue
		}
		day := &days[d.Day()-1]
		day.Transactions = append(day.Transactions, t)
		if t.IsIncome() {
			day.Income = day.Income.Add(t.Amount)
			calendar.Income = calendar.Income.Add(t.Amount)
		} else {
			day.Expense = day.Expense.Add(t.Amount)
			calendar.Expense = calendar.Expense.Add(t.Amount)
		}
	}

	for i := range days {
		days[i].Income = roundMoney(days[i].Income)
		days[i].Expense = roundMoney(days[i].Expense)
		days[i].Balance = days[i].Income.Sub(days[i].Expense)
	}

	calendar.Days = days
	calendar.Income = roundMoney(calendar.Income)
	calendar.Expense = roundMoney(calendar.Expense)
	calendar.Balance = calendar.Income.Sub(calendar.Expense)
	return calendar
}
