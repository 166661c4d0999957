package adapters

import (
	"time"

	"github.com/finanzas-pro/backend/internal/application/adapter"
)

type systemClock struct{}

// NewSystemClock returns a Clock reading the wall clock in UTC.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
