package app

import (
	"fmt"
	"time"
)

// The grid is fixed: five weekdays by 30-minute slots from 08:00 to 15:30.
// Time labels are zero-padded "HH:MM", so lexicographic comparison is
// chronological comparison.

const (
	gridOpenHour  = 8
	gridCloseHour = 16
	// SlotMinutes is the width of one grid slot.
	SlotMinutes = 30
)

// Days lists the grid's weekdays in order.
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Times lists the grid's slot start labels in chronological order
// (08:00, 08:30, ... 15:30).
var Times = func() []string {
	var ts []string
	for h := gridOpenHour; h < gridCloseHour; h++ {
		ts = append(ts, fmt.Sprintf("%02d:00", h))
		ts = append(ts, fmt.Sprintf("%02d:30", h))
	}
	return ts
}()

// IsTimeInRange reports whether time label t falls inside the half-open
// interval [start, end).
func IsTimeInRange(t, start, end string) bool {
	return t >= start && t < end
}

// FindEventCovering returns the first event whose interval covers the given
// day and time label, or nil. With overlapping events the first in iteration
// order wins; the write path rejects overlap, so that only arises for data
// predating the overlap check.
func FindEventCovering(day, t string, events []Event) *Event {
	for i := range events {
		if events[i].Day == day && IsTimeInRange(t, events[i].StartTime, events[i].EndTime) {
			return &events[i]
		}
	}
	return nil
}

// ValidDay reports whether day is one of the grid's weekdays.
func ValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// ValidSlotTime reports whether t is one of the grid's slot start labels.
func ValidSlotTime(t string) bool {
	for _, label := range Times {
		if label == t {
			return true
		}
	}
	return false
}

// parseHHMM parses a "HH:MM" label into a time-of-day.
func parseHHMM(s string) (time.Time, error) {
	if len(s) < 5 {
		return time.Time{}, fmt.Errorf("invalid time string: %s", s)
	}
	tt, err := time.Parse("15:04", s[:5])
	if err != nil {
		return time.Time{}, err
	}
	return tt, nil
}
