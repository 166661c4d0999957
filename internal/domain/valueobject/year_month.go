package valueobject

import (
	"fmt"
	"time"
)

// YearMonthLayout is the layout for calendar months.
const YearMonthLayout = "2006-01"

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(value string) (YearMonth, error) {
	if len(value) != len(YearMonthLayout) {
		return YearMonth{}, fmt.Errorf("month %q must be formatted as YYYY-MM", value)
	}
	t, err := time.ParseInLocation(YearMonthLayout, value, time.UTC)
	if err != nil {
		return YearMonth{}, fmt.Errorf("month %q must be formatted as YYYY-MM: %w", value, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// YearMonthOf returns the month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// String formats the month as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Days returns the number of days in the month.
func (ym YearMonth) Days() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstDay returns the first day of the month as an ISO date.
func (ym YearMonth) FirstDay() string {
	return ym.Day(1)
}

// LastDay returns the last day of the month as an ISO date.
func (ym YearMonth) LastDay() string {
	return ym.Day(ym.Days())
}

// Day returns the given day of the month as an ISO date, clamped to the month length.
func (ym YearMonth) Day(day int) string {
	if day < 1 {
		day = 1
	}
	if n := ym.Days(); day > n {
		day = n
	}
	return fmt.Sprintf("%s-%02d", ym.String(), day)
}

// Previous returns the month immediately before ym.
func (ym YearMonth) Previous() YearMonth {
	return ym.AddMonths(-1)
}

// AddMonths shifts the month by n, crossing year boundaries as needed.
func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether an ISO date falls inside the month.
// It compares the YYYY-MM prefix, so it never parses the date.
func (ym YearMonth) Contains(date string) bool {
	return len(date) >= 7 && date[:7] == ym.String()
}
