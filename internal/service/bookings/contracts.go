package bookings

import (
	"context"
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	CountOverlapping(ctx context.Context, fieldID int64, start, end time.Time) (int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Reject(ctx context.Context, id int64, reason string) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// ScheduleRepository интерфейс репозитория слотов расписания
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.FieldSchedule, error)
	Hold(ctx context.Context, id int64) error
	Release(ctx context.Context, id int64) error
}

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Mailer интерфейс клиента для отправки уведомлений
type Mailer interface {
	SendBookingStatusUpdate(ctx context.Context, toEmail, fieldName, status, window string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
