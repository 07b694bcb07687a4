package seeder

import (
	"context"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	ListActive(ctx context.Context) ([]*domain.Field, error)
}

// ScheduleRepository интерфейс репозитория слотов расписания
type ScheduleRepository interface {
	CreateBatch(ctx context.Context, schedules []*domain.FieldSchedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
