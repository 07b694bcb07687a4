package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a customer's claim on a field time window
type Booking struct {
	ID         int64
	UserID     int64
	FieldID    int64
	ScheduleID *int64 // nil for free-window bookings

	// Denormalized copy of the slot window
	StartTime time.Time
	EndTime   time.Time

	Price  float64
	Note   *string
	Status BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// transitions is the closed set of legal status edges:
// pending -> confirmed | rejected | cancelled
// confirmed -> completed | cancelled
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusRejected, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo returns true if the status machine permits the edge
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, s := range transitions[b.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// IsActive returns true if the booking is not in a terminal state
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no further transition is possible
func (b *Booking) IsTerminal() bool {
	return len(transitions[b.Status]) == 0
}

// CanBeApproved returns true if the booking is awaiting approval
func (b *Booking) CanBeApproved() bool {
	return b.Status == StatusPending
}

// CanBeRejected returns true if the booking can still be rejected
func (b *Booking) CanBeRejected() bool {
	return b.Status == StatusPending
}

// CanBeCompleted returns true if the booking can be marked completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// HoldsSlot returns true if the booking currently holds its schedule slot.
// Only confirmed bookings hold slots; pending ones never flipped the flag.
func (b *Booking) HoldsSlot() bool {
	return b.Status == StatusConfirmed && b.ScheduleID != nil
}

// BookingsFilter filter for listing bookings.
// StartDate is an inclusive lower bound on start_time, EndDate an
// exclusive upper bound; callers convert inclusive day params themselves.
type BookingsFilter struct {
	UserID          *int64
	FieldID         *int64
	Status          *BookingStatus
	StartDate       *time.Time
	EndDate         *time.Time
	IncludeInactive bool
}
