// Package clock abstracts time lookups so time-dependent views can be
// tested against a fixed moment instead of the system clock.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System reads the real system clock.
type System struct{}

// Now returns the current system time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same moment. Tests use it to pin rendered
// timestamps.
type Fixed struct {
	Time time.Time
}

// Now returns the fixed moment.
func (f Fixed) Now() time.Time {
	return f.Time
}

var (
	_ Clock = System{}
	_ Clock = Fixed{}
)
