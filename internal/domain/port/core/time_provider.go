package core

import "time"

// TimeProvider abstracts clock access so purchase timestamps are testable
type TimeProvider interface {
	// Now returns the current time in UTC
	Now() time.Time
}
