package aggregation

import (
	"fmt"
	"time"

	"github.com/finanzas-pro/backend/internal/domain/entity"
	"github.com/finanzas-pro/backend/internal/domain/valueobject"
)

// Granularity is the bucket size of an evolution series.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
)

// MonthlyThresholdDays is the span above which series switch to monthly buckets.
const MonthlyThresholdDays = 60

var monthAbbreviations = map[time.Month]string{
	time.January:   "ene",
	time.February:  "feb",
	time.March:     "mar",
	time.April:     "abr",
	time.May:       "may",
	time.June:      "jun",
	time.July:      "jul",
	time.August:    "ago",
	time.September: "sep",
	time.October:   "oct",
	time.November:  "nov",
	time.December:  "dic",
}

// MonthAbbreviation returns the Spanish three-letter month name.
func MonthAbbreviation(month time.Month) string {
	return monthAbbreviations[month]
}

// GranularityFor picks monthly buckets when end - start exceeds 60 days, daily otherwise.
func GranularityFor(r entity.DateRange) Granularity {
	if r.Duration() > MonthlyThresholdDays {
		return GranularityMonthly
	}
	return GranularityDaily
}

// PeriodInfo holds information about a single bucket.
type PeriodInfo struct {
	Key         string // YYYY-MM-DD for days, YYYY-MM for months
	PeriodStart string
	PeriodEnd   string
	PeriodLabel string
}

// GeneratePeriodLabel generates a human-readable label for a bucket.
// Formats:
// - Daily: "{day} {month_abbr}" (e.g., "05 ene")
// - Monthly: "{month_abbr} {year}" (e.g., "ene 2024")
func GeneratePeriodLabel(date time.Time, granularity Granularity) string {
	if granularity == GranularityMonthly {
		return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
	}
	return fmt.Sprintf("%02d %s", date.Day(), monthAbbreviations[date.Month()])
}

// GeneratePeriodSeries generates every bucket between the range bounds with no gaps.
// A reversed or malformed range yields no buckets.
func GeneratePeriodSeries(r entity.DateRange, granularity Granularity) []PeriodInfo {
	start, err := valueobject.ParseISODate(r.StartDate)
	if err != nil {
		return nil
	}
	end, err := valueobject.ParseISODate(r.EndDate)
	if err != nil || end.Before(start) {
		return nil
	}

	var periods []PeriodInfo

	switch granularity {
	case GranularityMonthly:
		// Start from the first of the month containing the start date
		current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
		for !current.After(end) {
			ym := valueobject.YearMonthOf(current)
			periods = append(periods, PeriodInfo{
				Key:         ym.String(),
				PeriodStart: ym.FirstDay(),
				PeriodEnd:   ym.LastDay(),
				PeriodLabel: GeneratePeriodLabel(current, GranularityMonthly),
			})
			current = current.AddDate(0, 1, 0)
		}

	default:
		for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
			day := valueobject.FormatISODate(current)
			periods = append(periods, PeriodInfo{
				Key:         day,
				PeriodStart: day,
				PeriodEnd:   day,
				PeriodLabel: GeneratePeriodLabel(current, GranularityDaily),
			})
		}
	}

	return periods
}

// GetPeriodKeyForDate returns the bucket key for an ISO date.
func GetPeriodKeyForDate(date string, granularity Granularity) string {
	if granularity == GranularityMonthly && len(date) >= 7 {
		return date[:7]
	}
	return date
}
