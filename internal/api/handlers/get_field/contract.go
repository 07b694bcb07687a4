package get_field

import (
	"context"

	"github.com/m04kA/FFP-BookingService/internal/service/fields/models"
)

type FieldService interface {
	GetByID(ctx context.Context, id int64) (*models.FieldResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
