package fuzzyclock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeSnapshot is a clock reading decomposed into the fields every
// translator needs. Build it with NewTimeSnapshot or SnapshotFromTime so
// the 12h and 24h views stay consistent.
type TimeSnapshot struct {
	Hour12      int
	Hour24      int
	Minute      int
	IsAfternoon bool
}

// NewTimeSnapshot derives a snapshot from a 24-hour reading.
func NewTimeSnapshot(hour24, minute int) (TimeSnapshot, error) {
	if hour24 < 0 || hour24 > 23 || minute < 0 || minute > 59 {
		return TimeSnapshot{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour24, minute)
	}

	hour12 := hour24
	switch {
	case hour24 == 0:
		hour12 = 12
	case hour24 > 12:
		hour12 = hour24 - 12
	}

	return TimeSnapshot{
		Hour12:      hour12,
		Hour24:      hour24,
		Minute:      minute,
		IsAfternoon: hour24 >= 12,
	}, nil
}

// SnapshotFromTime reads hour and minute from t in its own location.
func SnapshotFromTime(t time.Time) TimeSnapshot {
	snapshot, _ := NewTimeSnapshot(t.Hour(), t.Minute())
	return snapshot
}

// ParseClock parses an "HH:MM" 24-hour reading.
func ParseClock(value string) (TimeSnapshot, error) {
	hourPart, minutePart, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return TimeSnapshot{}, fmt.Errorf("%w: %q is not HH:MM", ErrInvalidTime, value)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return TimeSnapshot{}, fmt.Errorf("%w: hour %q", ErrInvalidTime, hourPart)
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return TimeSnapshot{}, fmt.Errorf("%w: minute %q", ErrInvalidTime, minutePart)
	}

	return NewTimeSnapshot(hour, minute)
}

// Hour returns the hour shown for the current reading.
func (s TimeSnapshot) Hour(use24Hour bool) int {
	if use24Hour {
		return s.Hour24
	}
	return s.Hour12
}

// NextHour returns the hour that follows the current one, wrapping 23 to 0
// in 24-hour mode and 12 to 1 in 12-hour mode.
func (s TimeSnapshot) NextHour(use24Hour bool) int {
	if use24Hour {
		return (s.Hour24 + 1) % 24
	}
	if s.Hour12 == 12 {
		return 1
	}
	return s.Hour12 + 1
}

func (s TimeSnapshot) String() string {
	return fmt.Sprintf("%02d:%02d", s.Hour24, s.Minute)
}
