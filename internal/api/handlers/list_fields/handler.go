package list_fields

import (
	"errors"
	"net/http"

	"github.com/m04kA/FFP-BookingService/internal/api/handlers"
	"github.com/m04kA/FFP-BookingService/internal/service/fields"
	"github.com/m04kA/FFP-BookingService/internal/service/fields/models"
)

const msgInvalidFilter = "некорректные параметры фильтрации"

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

// Handle GET /api/v1/fields?type=five_a_side&status=active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListFieldsRequest{}

	if fieldType := r.URL.Query().Get("type"); fieldType != "" {
		req.Type = &fieldType
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, fields.ErrInvalidInput):
			h.logger.Warn("GET /fields - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /fields - Failed to list fields: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
