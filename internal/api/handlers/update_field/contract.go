package update_field

import (
	"context"

	"github.com/m04kA/FFP-BookingService/internal/service/fields/models"
)

type FieldService interface {
	Update(ctx context.Context, id int64, req *models.UpdateFieldRequest, requesterID int64, isAdmin bool) (*models.FieldResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
