package reject_booking

import (
	"github.com/m04kA/FFP-BookingService/internal/service/bookings/models"
)

// RejectBookingRequest HTTP request model
type RejectBookingRequest struct {
	Reason string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RejectBookingRequest) ToServiceRequest() *models.RejectBookingRequest {
	return &models.RejectBookingRequest{
		Reason: r.Reason,
	}
}
