package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"identical intervals", at(0), at(2), at(0), at(2), true},
		{"partial overlap right", at(0), at(2), at(1), at(3), true},
		{"partial overlap left", at(1), at(3), at(0), at(2), true},
		{"b inside a", at(0), at(4), at(1), at(2), true},
		{"a inside b", at(1), at(2), at(0), at(4), true},
		{"touching boundaries do not overlap", at(0), at(2), at(2), at(4), false},
		{"touching boundaries reversed", at(2), at(4), at(0), at(2), false},
		{"disjoint", at(0), at(1), at(3), at(4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestFieldSchedule_OverlapsWindow(t *testing.T) {
	slot := &FieldSchedule{
		StartTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	assert.True(t, slot.OverlapsWindow(
		time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 13, 0, 0, 0, time.UTC),
	))
	assert.False(t, slot.OverlapsWindow(
		time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
	))
}
