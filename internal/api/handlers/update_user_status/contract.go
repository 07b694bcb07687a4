package update_user_status

import (
	"context"

	"github.com/m04kA/FFP-BookingService/internal/service/users/models"
)

type UserService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateUserStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
