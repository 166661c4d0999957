package adapter

import "time"

// Clock supplies the current time for defaults such as the current month range.
type Clock interface {
	Now() time.Time
}
