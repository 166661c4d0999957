package aggregation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// BusinessDays counts the days in range that are not Sunday.
// Trading runs six days a week. A reversed or malformed range has none.
func BusinessDays(r entity.DateRange) int {
	start, err := valueobject.ParseISODate(r.StartDate)
	if err != nil {
		return 0
	}
	end, err := valueobject.ParseISODate(r.EndDate)
	if err != nil || end.Before(start) {
		return 0
	}

	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if day.Weekday() != time.Sunday {
			count++
		}
	}
	return count
}

// BusinessDayAverage divides sum by the business days in range, never by less than one.
func BusinessDayAverage(sum decimal.Decimal, r entity.DateRange) decimal.Decimal {
	days := BusinessDays(r)
	if days < 1 {
		days = 1
	}
	return sum.Div(decimal.NewFromInt(int64(days))).Round(2)
}
