package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

var (
	// ErrInvalidToken токен не прошел проверку подписи или срока действия
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Identity данные аутентифицированного пользователя из токена
type Identity struct {
	UserID int64
	Role   domain.UserRole
}

// TokenManager выпускает и проверяет JWT токены доступа
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создает менеджер токенов с заданным секретом и сроком жизни
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue выпускает подписанный токен для пользователя
func (m *TokenManager) Issue(user *domain.User) (string, error) {
	now := time.Now()

	claims := accessClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: Issue - sign token: %w", err)
	}

	return signed, nil
}

// Verify проверяет подпись и срок действия токена, возвращает данные пользователя
func (m *TokenManager) Verify(tokenString string) (*Identity, error) {
	var claims accessClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	var userID int64
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil {
		return nil, ErrInvalidToken
	}

	role := domain.UserRole(claims.Role)
	if !domain.ValidRole(role) {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: userID,
		Role:   role,
	}, nil
}
