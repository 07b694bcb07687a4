package create_field

import (
	"errors"
	"net/http"

	"github.com/m04kA/FFP-BookingService/internal/api/handlers"
	"github.com/m04kA/FFP-BookingService/internal/api/middleware"
	"github.com/m04kA/FFP-BookingService/internal/domain"
	"github.com/m04kA/FFP-BookingService/internal/service/fields"
	"github.com/m04kA/FFP-BookingService/internal/service/fields/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные поля"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	service FieldService
	logger  Logger
}

func NewHandler(service FieldService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/fields
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateFieldRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fields - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req, identity.UserID, identity.Role == domain.RoleAdmin)
	if err != nil {
		switch {
		case errors.Is(err, fields.ErrInvalidInput):
			h.logger.Warn("POST /fields - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /fields - Failed to create field: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fields - Field created: field_id=%d, user_id=%d", resp.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
