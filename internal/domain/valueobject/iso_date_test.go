package valueobject

import "testing"

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"same day", "2024-03-10", "2024-03-10", 0},
		{"leap february", "2024-02-01", "2024-02-29", 28},
		{"reversed", "2024-02-10", "2024-02-01", -9},
		{"beyond the time.Duration range", "1700-01-01", "2024-12-31", 118703},
		{"invalid input", "2024-13-01", "2024-12-31", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.start, tt.end); got != tt.expected {
				t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}
