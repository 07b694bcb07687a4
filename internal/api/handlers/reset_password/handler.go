package reset_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/FFP-BookingService/internal/api/handlers"
	"github.com/m04kA/FFP-BookingService/internal/service/auth"
	"github.com/m04kA/FFP-BookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCodeInvalid        = "неверный код восстановления"
	msgCodeExpired        = "срок действия кода истек"
	msgInvalidInput       = "некорректные данные"
	msgPasswordUpdated    = "пароль обновлен"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/reset-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/reset-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, auth.ErrCodeInvalid):
			h.logger.Warn("POST /auth/reset-password - Invalid code")
			handlers.RespondBadRequest(w, msgCodeInvalid)

		case errors.Is(err, auth.ErrCodeExpired):
			h.logger.Warn("POST /auth/reset-password - Expired code")
			handlers.RespondBadRequest(w, msgCodeExpired)

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/reset-password - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/reset-password - Failed to reset password: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/reset-password - Password updated")
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgPasswordUpdated})
}
