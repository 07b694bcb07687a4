package reset_password

import (
	"context"

	"github.com/m04kA/FFP-BookingService/internal/service/auth/models"
)

type AuthService interface {
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
