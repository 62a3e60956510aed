package timex

import "time"

// Clock reports the current instant. Components that depend on wall-clock
// time take a Clock so tests can pin "now".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns time.Now.
var SystemClock Clock = ClockFunc(time.Now)

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
