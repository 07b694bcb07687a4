package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FieldID <= 0 {
		return fmt.Errorf("%w: fieldID must be positive", ErrInvalidInput)
	}

	if req.ScheduleID != nil {
		if *req.ScheduleID <= 0 {
			return fmt.Errorf("%w: scheduleID must be positive", ErrInvalidInput)
		}
		return nil
	}

	// Без слота расписания требуется свободное окно
	if req.StartTime == nil || req.EndTime == nil {
		return fmt.Errorf("%w: either scheduleID or startTime and endTime are required", ErrInvalidInput)
	}

	return nil
}

// validateWindow проверяет корректность временного окна бронирования
func validateWindow(start, end, now time.Time) error {
	if !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time", ErrInvalidTimeRange)
	}

	if end.Sub(start) < domain.MinBookingDurationMinutes*time.Minute {
		return fmt.Errorf("%w: booking must be at least %d minutes", ErrInvalidTimeRange, domain.MinBookingDurationMinutes)
	}

	if start.Before(now) {
		return ErrInvalidDate
	}

	return nil
}

// validateNote проверяет длину заметки
func validateNote(note *string) error {
	if note != nil && len(*note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}
	return nil
}
