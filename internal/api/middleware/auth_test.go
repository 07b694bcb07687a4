package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FFP-BookingService/internal/auth"
	"github.com/m04kA/FFP-BookingService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func protectedEndpoint(t *testing.T, verifier TokenVerifier, cap auth.Capability) http.Handler {
	t.Helper()

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		require.True(t, ok, "identity must be in context after Authenticate")
		require.NotNil(t, identity)
		w.WriteHeader(http.StatusOK)
	})

	return Authenticate(verifier, noopLogger{})(RequireCapability(cap, noopLogger{})(final))
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	endpoint := protectedEndpoint(t, tokens, auth.CapBookingRead)

	token, err := tokens.Issue(&domain.User{ID: 42, Role: domain.RoleUser})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			endpoint.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireCapability_RoleGate(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	endpoint := protectedEndpoint(t, tokens, auth.CapBookingApprove)

	userToken, err := tokens.Issue(&domain.User{ID: 1, Role: domain.RoleUser})
	require.NoError(t, err)
	managerToken, err := tokens.Issue(&domain.User{ID: 2, Role: domain.RoleManager})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/1/approve", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rec := httptest.NewRecorder()
	endpoint.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code, "user role must not approve bookings")

	req = httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/1/approve", nil)
	req.Header.Set("Authorization", "Bearer "+managerToken)
	rec = httptest.NewRecorder()
	endpoint.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
