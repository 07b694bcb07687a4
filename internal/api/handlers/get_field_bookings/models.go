package get_field_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	"github.com/m04kA/FFP-BookingService/internal/service/bookings/models"
)

// parseQuery собирает фильтр бронирований поля из query параметров
// Поддерживаются status, startDate, endDate (YYYY-MM-DD) и includeInactive
func parseQuery(fieldID int64, query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		FieldID: &fieldID,
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if startDate := query.Get("startDate"); startDate != "" {
		parsed, err := time.Parse(domain.DateFormat, startDate)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", err)
		}
		req.StartDate = &parsed
	}

	if endDate := query.Get("endDate"); endDate != "" {
		parsed, err := time.Parse(domain.DateFormat, endDate)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", err)
		}
		// Включаем весь день конца периода
		end := parsed.AddDate(0, 0, 1)
		req.EndDate = &end
	}

	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	return req, nil
}
