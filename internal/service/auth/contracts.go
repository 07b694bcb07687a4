package auth

import (
	"context"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePasswordByEmail(ctx context.Context, email string, passwordHash string) error
}

// ResetRepository интерфейс репозитория кодов восстановления пароля
type ResetRepository interface {
	Create(ctx context.Context, reset *domain.PasswordReset) (*domain.PasswordReset, error)
	GetActiveByEmailAndCode(ctx context.Context, email, code string) (*domain.PasswordReset, error)
	MarkUsed(ctx context.Context, id int64) error
	InvalidateByEmail(ctx context.Context, email string) error
}

// TokenIssuer интерфейс выпуска токенов доступа
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// Mailer интерфейс клиента для отправки писем
type Mailer interface {
	SendPasswordResetCode(ctx context.Context, toEmail, code string, ttlMinutes int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
