package fields

import (
	"context"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

// FieldRepository интерфейс репозитория полей
type FieldRepository interface {
	Create(ctx context.Context, field *domain.Field) (*domain.Field, error)
	GetByID(ctx context.Context, id int64) (*domain.Field, error)
	List(ctx context.Context, filter domain.FieldsFilter) ([]*domain.Field, error)
	Update(ctx context.Context, id int64, field *domain.Field) (*domain.Field, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
