package seeder

import (
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

// generateDayBands генерирует слоты расписания поля на одни сутки
// Слоты идут подряд от часа открытия до часа закрытия с фиксированным шагом
func generateDayBands(fieldID int64, day time.Time) []*domain.FieldSchedule {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	bandsPerDay := (domain.ScheduleClosingHour - domain.ScheduleOpeningHour) / domain.ScheduleBandHours
	schedules := make([]*domain.FieldSchedule, 0, bandsPerDay)

	for hour := domain.ScheduleOpeningHour; hour+domain.ScheduleBandHours <= domain.ScheduleClosingHour; hour += domain.ScheduleBandHours {
		schedules = append(schedules, &domain.FieldSchedule{
			FieldID:     fieldID,
			StartTime:   dayStart.Add(time.Duration(hour) * time.Hour),
			EndTime:     dayStart.Add(time.Duration(hour+domain.ScheduleBandHours) * time.Hour),
			IsAvailable: true,
		})
	}

	return schedules
}
