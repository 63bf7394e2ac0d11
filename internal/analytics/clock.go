package analytics

import "time"

// Clock supplies the current time to all computations that depend on "today".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock in UTC.
var SystemClock Clock = ClockFunc(func() time.Time {
	return time.Now().UTC()
})

// RandomSource picks indices for randomized content like tips.
//
// *rand.Rand from math/rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}
