package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to rejected", StatusConfirmed, StatusRejected, false},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"rejected is terminal", StatusRejected, StatusPending, false},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_TerminalStates(t *testing.T) {
	for _, status := range InactiveStatuses {
		b := &Booking{Status: status}
		assert.True(t, b.IsTerminal(), "status %s should be terminal", status)
		assert.False(t, b.IsActive(), "status %s should not be active", status)
		assert.False(t, b.CanBeCancelled(), "status %s should not be cancellable", status)
	}

	for _, status := range ActiveStatuses {
		b := &Booking{Status: status}
		assert.False(t, b.IsTerminal(), "status %s should not be terminal", status)
		assert.True(t, b.IsActive(), "status %s should be active", status)
		assert.True(t, b.CanBeCancelled(), "status %s should be cancellable", status)
	}
}

func TestBooking_HoldsSlot(t *testing.T) {
	scheduleID := int64(42)

	confirmed := &Booking{Status: StatusConfirmed, ScheduleID: &scheduleID}
	assert.True(t, confirmed.HoldsSlot())

	pending := &Booking{Status: StatusPending, ScheduleID: &scheduleID}
	assert.False(t, pending.HoldsSlot(), "pending booking never flipped the flag")

	freeWindow := &Booking{Status: StatusConfirmed, ScheduleID: nil}
	assert.False(t, freeWindow.HoldsSlot(), "free-window booking has no slot to hold")

	cancelled := &Booking{Status: StatusCancelled, ScheduleID: &scheduleID}
	assert.False(t, cancelled.HoldsSlot())
}

func TestBooking_ApprovalGuards(t *testing.T) {
	pending := &Booking{Status: StatusPending}
	assert.True(t, pending.CanBeApproved())
	assert.True(t, pending.CanBeRejected())
	assert.False(t, pending.CanBeCompleted())

	confirmed := &Booking{Status: StatusConfirmed}
	assert.False(t, confirmed.CanBeApproved())
	assert.False(t, confirmed.CanBeRejected())
	assert.True(t, confirmed.CanBeCompleted())
}
