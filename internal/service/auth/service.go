package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	resetRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/passwordreset"
	userRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/user"
	"github.com/m04kA/FFP-BookingService/internal/service/auth/models"
)

const minPasswordLength = 8

// Service сервис аутентификации и восстановления пароля
type Service struct {
	userRepo  UserRepository
	resetRepo ResetRepository
	tokens    TokenIssuer
	mailer    Mailer
	logger    Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	resetRepo ResetRepository,
	tokens TokenIssuer,
	mailer Mailer,
	logger Logger,
) *Service {
	return &Service{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		tokens:    tokens,
		mailer:    mailer,
		logger:    logger,
	}
}

// Register регистрирует нового пользователя с ролью user
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("Register: registering user email=%s", email)

	if err := validateRegistration(req.Name, email, req.Password); err != nil {
		s.logger.Warn("Register: invalid input for email=%s: %v", email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Status:       domain.UserStatusActive,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s already taken", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		s.logger.Error("Register: failed to issue token for user id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user id=%d registered, email=%s", created.ID, email)
	return &models.AuthResponse{
		Token: token,
		User:  *models.FromDomainUser(created),
	}, nil
}

// Login аутентифицирует пользователя по email и паролю
// Не раскрывает, что именно неверно: email или пароль
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	s.logger.Info("Login: attempt for email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user not found, email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive() {
		s.logger.Warn("Login: user id=%d is not active, status=%s", user.ID, user.Status)
		return nil, ErrUserInactive
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d authenticated", user.ID)
	return &models.AuthResponse{
		Token: token,
		User:  *models.FromDomainUser(user),
	}, nil
}

// ForgotPassword выпускает одноразовый код и отправляет его на email
// Для незарегистрированного email операция завершается успешно без отправки,
// чтобы не раскрывать наличие учетной записи
func (s *Service) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {
	email := normalizeEmail(req.Email)
	s.logger.Info("ForgotPassword: request for email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("ForgotPassword: unknown email=%s, responding as success", email)
			return nil
		}
		s.logger.Error("ForgotPassword: repository error for email=%s: %v", email, err)
		return fmt.Errorf("%w: ForgotPassword - repository error: %v", ErrInternal, err)
	}

	code, err := generateCode(domain.ResetCodeLength)
	if err != nil {
		s.logger.Error("ForgotPassword: failed to generate code for email=%s: %v", email, err)
		return fmt.Errorf("%w: ForgotPassword - generate code: %v", ErrInternal, err)
	}

	if err := s.resetRepo.InvalidateByEmail(ctx, email); err != nil {
		s.logger.Error("ForgotPassword: failed to invalidate old codes for email=%s: %v", email, err)
		return fmt.Errorf("%w: ForgotPassword - invalidate old codes: %v", ErrInternal, err)
	}

	reset := &domain.PasswordReset{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(domain.ResetCodeTTLMinutes * time.Minute),
	}

	if _, err := s.resetRepo.Create(ctx, reset); err != nil {
		s.logger.Error("ForgotPassword: failed to store code for email=%s: %v", email, err)
		return fmt.Errorf("%w: ForgotPassword - store code: %v", ErrInternal, err)
	}

	if err := s.mailer.SendPasswordResetCode(ctx, user.Email, code, domain.ResetCodeTTLMinutes); err != nil {
		s.logger.Error("ForgotPassword: failed to send code to email=%s: %v", email, err)
		return fmt.Errorf("%w: ForgotPassword - send code: %v", ErrInternal, err)
	}

	s.logger.Info("ForgotPassword: code sent to email=%s", email)
	return nil
}

// ResetPassword меняет пароль по одноразовому коду и гасит код
func (s *Service) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	email := normalizeEmail(req.Email)
	s.logger.Info("ResetPassword: request for email=%s", email)

	if len(req.NewPassword) < minPasswordLength {
		s.logger.Warn("ResetPassword: password too short for email=%s", email)
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	reset, err := s.resetRepo.GetActiveByEmailAndCode(ctx, email, req.Code)
	if err != nil {
		if errors.Is(err, resetRepo.ErrCodeNotFound) {
			s.logger.Warn("ResetPassword: code not found for email=%s", email)
			return ErrCodeInvalid
		}
		s.logger.Error("ResetPassword: repository error for email=%s: %v", email, err)
		return fmt.Errorf("%w: ResetPassword - repository error: %v", ErrInternal, err)
	}

	if reset.IsExpired(time.Now()) {
		s.logger.Warn("ResetPassword: code expired for email=%s", email)
		return ErrCodeExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ResetPassword: failed to hash password for email=%s: %v", email, err)
		return fmt.Errorf("%w: ResetPassword - hash password: %v", ErrInternal, err)
	}

	if err := s.userRepo.UpdatePasswordByEmail(ctx, email, string(hash)); err != nil {
		s.logger.Error("ResetPassword: failed to update password for email=%s: %v", email, err)
		return fmt.Errorf("%w: ResetPassword - update password: %v", ErrInternal, err)
	}

	if err := s.resetRepo.MarkUsed(ctx, reset.ID); err != nil {
		s.logger.Error("ResetPassword: failed to mark code used for email=%s: %v", email, err)
		return fmt.Errorf("%w: ResetPassword - mark code used: %v", ErrInternal, err)
	}

	s.logger.Info("ResetPassword: password updated for email=%s", email)
	return nil
}

// Вспомогательные функции

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if !strings.Contains(email, "@") || len(email) < 3 {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	return nil
}

// generateCode генерирует случайный цифровой код заданной длины
func generateCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
