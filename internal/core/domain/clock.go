package domain

import "time"

// Clock supplies the current time to accounts.
// Maturity checks and transaction timestamps read it on every call, so tests can
// substitute a fixed or manually advanced clock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)
