// Package valueobject contains domain value objects for the Finanzas Pro system.
package valueobject

import (
	"fmt"
	"time"
)

// DateLayout is the fixed-width ISO layout every stored date uses.
// Dates in this layout sort lexicographically in calendar order.
const DateLayout = "2006-01-02"

// ParseISODate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseISODate(value string) (time.Time, error) {
	if len(value) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("date %q must be formatted as YYYY-MM-DD", value)
	}
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be formatted as YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}

// IsISODate reports whether value is a valid YYYY-MM-DD calendar date.
func IsISODate(value string) bool {
	_, err := ParseISODate(value)
	return err == nil
}

// FormatISODate formats t as YYYY-MM-DD using its calendar date in UTC.
func FormatISODate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// AddDays shifts an ISO date by n calendar days. Invalid input is returned unchanged.
func AddDays(value string, n int) string {
	t, err := ParseISODate(value)
	if err != nil {
		return value
	}
	return FormatISODate(t.AddDate(0, 0, n))
}

// DaysBetween returns end minus start in whole days. It is negative when end precedes start.
func DaysBetween(start, end string) int {
	s, err := ParseISODate(start)
	if err != nil {
		return 0
	}
	e, err := ParseISODate(end)
	if err != nil {
		return 0
	}
	return int((e.Unix() - s.Unix()) / 86400)
}

// DateOf truncates a timestamp to its calendar date in loc and returns it as an ISO string.
func DateOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}
