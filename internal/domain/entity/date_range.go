package entity

import (
	"time"

	domainerror "github.com/finanzas-pro/backend/internal/domain/error"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// DateRange is an inclusive [StartDate, EndDate] window of ISO dates.
type DateRange struct {
	StartDate string
	EndDate   string
}

// RangePreset names a commonly used range relative to a reference date.
type RangePreset string

const (
	PresetThisMonth   RangePreset = "this_month"
	PresetLastMonth   RangePreset = "last_month"
	PresetLast3Months RangePreset = "last_3_months"
	PresetThisYear    RangePreset = "this_year"
)

// NewDateRange builds a range from two ISO dates. A reversed range is accepted;
// aggregations degrade it to empty results.
func NewDateRange(startDate, endDate string) (DateRange, error) {
	if !valueobject.IsISODate(startDate) || !valueobject.IsISODate(endDate) {
		return DateRange{}, domainerror.NewDashboardError(domainerror.ErrCodeInvalidDateFormat, "dates must be formatted as YYYY-MM-DD", domainerror.ErrInvalidDateFormat)
	}
	return DateRange{StartDate: startDate, EndDate: endDate}, nil
}

// CurrentMonthRange returns the calendar month containing now.
func CurrentMonthRange(now time.Time) DateRange {
	return MonthRange(valueobject.YearMonthOf(now))
}

// MonthRange returns the full calendar month.
func MonthRange(ym valueobject.YearMonth) DateRange {
	return DateRange{StartDate: ym.FirstDay(), EndDate: ym.LastDay()}
}

// YearRange returns January 1 to December 31 of year.
func YearRange(year int) DateRange {
	return DateRange{
		StartDate: valueobject.YearMonth{Year: year, Month: time.January}.FirstDay(),
		EndDate:   valueobject.YearMonth{Year: year, Month: time.December}.LastDay(),
	}
}

// PresetRange resolves a preset relative to now.
func PresetRange(preset RangePreset, now time.Time) (DateRange, error) {
	current := valueobject.YearMonthOf(now)

	switch preset {
	case PresetThisMonth:
		return MonthRange(current), nil
	case PresetLastMonth:
		return MonthRange(current.Previous()), nil
	case PresetLast3Months:
		return DateRange{StartDate: current.AddMonths(-2).FirstDay(), EndDate: current.LastDay()}, nil
	case PresetThisYear:
		return YearRange(now.Year()), nil
	default:
		return DateRange{}, domainerror.NewDashboardError(domainerror.ErrCodeInvalidPreset, "unknown range preset", domainerror.ErrInvalidPreset)
	}
}

// Contains reports whether an ISO date falls inside the range, bounds included.
func (r DateRange) Contains(date string) bool {
	return r.StartDate <= date && date <= r.EndDate
}

// IsReversed reports whether the end precedes the start.
func (r DateRange) IsReversed() bool {
	return r.EndDate < r.StartDate
}

// Duration returns end minus start in days.
func (r DateRange) Duration() int {
	return valueobject.DaysBetween(r.StartDate, r.EndDate)
}

// Days returns the inclusive day count, or 0 for a reversed range.
func (r DateRange) Days() int {
	if r.IsReversed() {
		return 0
	}
	return r.Duration() + 1
}

// String formats the range as "start..end".
func (r DateRange) String() string {
	return r.StartDate + ".." + r.EndDate
}
