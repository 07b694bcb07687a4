package forgot_password

import (
	"net/http"

	"github.com/m04kA/FFP-BookingService/internal/api/handlers"
	"github.com/m04kA/FFP-BookingService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCodeSent           = "если email зарегистрирован, код восстановления отправлен"
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

// Handle POST /api/v1/auth/forgot-password
// Ответ одинаков для зарегистрированных и незарегистрированных email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/forgot-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ForgotPassword(r.Context(), &req); err != nil {
		h.logger.Error("POST /auth/forgot-password - Failed to send code: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/forgot-password - Reset code requested")
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgCodeSent})
}
