package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinRating = 1
	MaxRating = 5

	MaxNoteLength   = 500
	MaxReasonLength = 500

	MinBookingDurationMinutes = 60
)

// Password reset constants
const (
	ResetCodeLength     = 6
	ResetCodeTTLMinutes = 15
)

// Schedule seeding constants: fixed daily bands repeated over a rolling window
const (
	ScheduleOpeningHour    = 6  // first band starts at 06:00
	ScheduleClosingHour    = 24 // last band ends at midnight
	ScheduleBandHours      = 3  // 06-09, 09-12, ..., 21-24
	DefaultSeedHorizonDays = 7
)

// InactiveStatuses terminal booking statuses, excluded from availability counts
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
}

// ActiveStatuses statuses of bookings that are still in flight
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllBookingStatuses every known booking status, used for input validation
var AllBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
}
