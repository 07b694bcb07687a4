package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	resetRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/passwordreset"
	userRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/user"
	"github.com/m04kA/FFP-BookingService/internal/service/auth/models"
)

// Фейки репозиториев для unit тестов

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	m := make(map[string]*domain.User, len(users))
	for _, u := range users {
		m[u.Email] = u
	}
	return &fakeUserRepo{byEmail: m, nextID: 100}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, userRepo.ErrDuplicateEmail
	}
	f.nextID++
	created := *user
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.byEmail[created.Email] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpdatePasswordByEmail(_ context.Context, email string, passwordHash string) error {
	u, ok := f.byEmail[email]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeResetRepo struct {
	resets []*domain.PasswordReset
	nextID int64
}

func (f *fakeResetRepo) Create(_ context.Context, reset *domain.PasswordReset) (*domain.PasswordReset, error) {
	f.nextID++
	created := *reset
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	f.resets = append(f.resets, &created)
	return &created, nil
}

func (f *fakeResetRepo) GetActiveByEmailAndCode(_ context.Context, email, code string) (*domain.PasswordReset, error) {
	for i := len(f.resets) - 1; i >= 0; i-- {
		r := f.resets[i]
		if r.Email == email && r.Code == code && !r.Used {
			return r, nil
		}
	}
	return nil, resetRepo.ErrCodeNotFound
}

func (f *fakeResetRepo) MarkUsed(_ context.Context, id int64) error {
	for _, r := range f.resets {
		if r.ID == id {
			r.Used = true
			return nil
		}
	}
	return resetRepo.ErrCodeNotFound
}

func (f *fakeResetRepo) InvalidateByEmail(_ context.Context, email string) error {
	for _, r := range f.resets {
		if r.Email == email {
			r.Used = true
		}
	}
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(user *domain.User) (string, error) {
	return "token-for-" + user.Email, nil
}

type fakeMailer struct {
	codes map[string]string
}

func (f *fakeMailer) SendPasswordResetCode(_ context.Context, toEmail, code string, _ int) error {
	if f.codes == nil {
		f.codes = make(map[string]string)
	}
	f.codes[toEmail] = code
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeUser(t *testing.T, email, password string) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           1,
		Name:         "Иван",
		Email:        email,
		PasswordHash: mustHash(t, password),
		Role:         domain.RoleUser,
		Status:       domain.UserStatusActive,
	}
}

func TestService_Register(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewService(users, &fakeResetRepo{}, fakeTokens{}, &fakeMailer{}, noopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Иван",
		Email:    "  Ivan@Example.COM ",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ivan@example.com", resp.User.Email, "email must be normalized")
	assert.Equal(t, string(domain.RoleUser), resp.User.Role)

	stored, err := users.GetByEmail(context.Background(), "ivan@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret-password")))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo(activeUser(t, "ivan@example.com", "secret-password"))
	svc := NewService(users, &fakeResetRepo{}, fakeTokens{}, &fakeMailer{}, noopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Иван",
		Email:    "ivan@example.com",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Register_Validation(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeResetRepo{}, fakeTokens{}, &fakeMailer{}, noopLogger{})

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"empty name", models.RegisterRequest{Email: "a@b.com", Password: "secret-password"}},
		{"invalid email", models.RegisterRequest{Name: "Иван", Email: "not-an-email", Password: "secret-password"}},
		{"short password", models.RegisterRequest{Name: "Иван", Email: "a@b.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Login(t *testing.T) {
	users := newFakeUserRepo(activeUser(t, "ivan@example.com", "secret-password"))
	svc := NewService(users, &fakeResetRepo{}, fakeTokens{}, &fakeMailer{}, noopLogger{})

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "Ivan@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-for-ivan@example.com", resp.Token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := newFakeUserRepo(activeUser(t, "ivan@example.com", "secret-password"))
	svc := NewService(users, &fakeResetRepo{}, fakeTokens{}, &fakeMailer{}, noopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeResetRepo{}, fakeTokens{}, &fakeMailer{}, noopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret-password",
	})

	// Неизвестный email и неверный пароль неразличимы для клиента
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_BlockedUser(t *testing.T) {
	blocked := activeUser(t, "ivan@example.com", "secret-password")
	blocked.Status = domain.UserStatusBanned
	svc := NewService(newFakeUserRepo(blocked), &fakeResetRepo{}, fakeTokens{}, &fakeMailer{}, noopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "secret-password",
	})

	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestService_ForgotPassword(t *testing.T) {
	users := newFakeUserRepo(activeUser(t, "ivan@example.com", "secret-password"))
	resets := &fakeResetRepo{}
	mailer := &fakeMailer{}
	svc := NewService(users, resets, fakeTokens{}, mailer, noopLogger{})

	err := svc.ForgotPassword(context.Background(), &models.ForgotPasswordRequest{Email: "ivan@example.com"})

	require.NoError(t, err)
	require.Len(t, resets.resets, 1)
	code := mailer.codes["ivan@example.com"]
	assert.Len(t, code, domain.ResetCodeLength)
	assert.Equal(t, code, resets.resets[0].Code)
}

func TestService_ForgotPassword_UnknownEmail(t *testing.T) {
	resets := &fakeResetRepo{}
	mailer := &fakeMailer{}
	svc := NewService(newFakeUserRepo(), resets, fakeTokens{}, mailer, noopLogger{})

	err := svc.ForgotPassword(context.Background(), &models.ForgotPasswordRequest{Email: "ghost@example.com"})

	// Наличие учетной записи не раскрывается: успех без отправки
	require.NoError(t, err)
	assert.Empty(t, resets.resets)
	assert.Empty(t, mailer.codes)
}

func TestService_ForgotPassword_InvalidatesPreviousCodes(t *testing.T) {
	users := newFakeUserRepo(activeUser(t, "ivan@example.com", "secret-password"))
	resets := &fakeResetRepo{}
	svc := NewService(users, resets, fakeTokens{}, &fakeMailer{}, noopLogger{})

	require.NoError(t, svc.ForgotPassword(context.Background(), &models.ForgotPasswordRequest{Email: "ivan@example.com"}))
	require.NoError(t, svc.ForgotPassword(context.Background(), &models.ForgotPasswordRequest{Email: "ivan@example.com"}))

	require.Len(t, resets.resets, 2)
	assert.True(t, resets.resets[0].Used, "old code must be invalidated")
	assert.False(t, resets.resets[1].Used)
}

func TestService_ResetPassword(t *testing.T) {
	users := newFakeUserRepo(activeUser(t, "ivan@example.com", "secret-password"))
	resets := &fakeResetRepo{}
	mailer := &fakeMailer{}
	svc := NewService(users, resets, fakeTokens{}, mailer, noopLogger{})

	require.NoError(t, svc.ForgotPassword(context.Background(), &models.ForgotPasswordRequest{Email: "ivan@example.com"}))

	err := svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "ivan@example.com",
		Code:        mailer.codes["ivan@example.com"],
		NewPassword: "new-password",
	})

	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "ivan@example.com",
		Password: "new-password",
	})
	assert.NoError(t, err, "new password must work after reset")

	// Код одноразовый
	err = svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "ivan@example.com",
		Code:        mailer.codes["ivan@example.com"],
		NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, ErrCodeInvalid)
}

func TestService_ResetPassword_WrongCode(t *testing.T) {
	users := newFakeUserRepo(activeUser(t, "ivan@example.com", "secret-password"))
	svc := NewService(users, &fakeResetRepo{}, fakeTokens{}, &fakeMailer{}, noopLogger{})

	err := svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "ivan@example.com",
		Code:        "000000",
		NewPassword: "new-password",
	})

	assert.ErrorIs(t, err, ErrCodeInvalid)
}

func TestService_ResetPassword_ExpiredCode(t *testing.T) {
	users := newFakeUserRepo(activeUser(t, "ivan@example.com", "secret-password"))
	resets := &fakeResetRepo{}
	svc := NewService(users, resets, fakeTokens{}, &fakeMailer{}, noopLogger{})

	_, err := resets.Create(context.Background(), &domain.PasswordReset{
		Email:     "ivan@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "ivan@example.com",
		Code:        "123456",
		NewPassword: "new-password",
	})

	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestService_ResetPassword_ShortPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeResetRepo{}, fakeTokens{}, &fakeMailer{}, noopLogger{})

	err := svc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "ivan@example.com",
		Code:        "123456",
		NewPassword: "short",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
