package get_available_slots

import (
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

// calculateAvailability вычисляет доступность каждого слота
// Слот недоступен, если его флаг занят, он уже начался или его окно
// пересекается с подтвержденным бронированием на свободное окно
func calculateAvailability(
	schedules []*domain.FieldSchedule,
	bookings []*domain.Booking,
	now time.Time,
) []Slot {
	slots := make([]Slot, 0, len(schedules))

	for _, schedule := range schedules {
		available := schedule.IsAvailable && schedule.StartTime.After(now)

		if available {
			for _, booking := range bookings {
				if booking.Status != domain.StatusConfirmed {
					continue
				}
				if domain.Overlaps(schedule.StartTime, schedule.EndTime, booking.StartTime, booking.EndTime) {
					available = false
					break
				}
			}
		}

		slots = append(slots, Slot{
			ScheduleID: schedule.ID,
			StartTime:  schedule.StartTime,
			EndTime:    schedule.EndTime,
			Available:  available,
		})
	}

	return slots
}
