package forgot_password

import (
	"context"

	"github.com/m04kA/FFP-BookingService/internal/service/auth/models"
)

type AuthService interface {
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
