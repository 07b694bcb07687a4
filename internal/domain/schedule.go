package domain

import "time"

// FieldSchedule represents a discrete bookable time window on one field.
// The availability flag is the single piece of shared mutable state in the
// booking lifecycle; it is only ever flipped with a conditional update.
type FieldSchedule struct {
	ID          int64
	FieldID     int64
	StartTime   time.Time
	EndTime     time.Time
	IsAvailable bool
	CreatedAt   time.Time
}

// OverlapsWindow returns true if the slot overlaps the given half-open window
func (s *FieldSchedule) OverlapsWindow(start, end time.Time) bool {
	return Overlaps(s.StartTime, s.EndTime, start, end)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching boundaries do not count as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
