package list_fields

import (
	"context"

	"github.com/m04kA/FFP-BookingService/internal/service/fields/models"
)

type FieldService interface {
	List(ctx context.Context, req *models.ListFieldsRequest) (*models.FieldListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
