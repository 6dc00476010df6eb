package fuzzyclock

import "time"

// TimeSource provides the current time.
type TimeSource interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// TimeSourceFunc adapts a function to TimeSource.
type TimeSourceFunc func() time.Time

func (f TimeSourceFunc) Now() time.Time {
	return f()
}
