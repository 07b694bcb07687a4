package create_booking

import (
	"time"

	createBooking "github.com/m04kA/FFP-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// Указывается либо scheduleId, либо свободное окно startTime-endTime
type CreateBookingRequest struct {
	FieldID    int64      `json:"fieldId"`
	ScheduleID *int64     `json:"scheduleId,omitempty"`
	StartTime  *time.Time `json:"startTime,omitempty"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Note       *string    `json:"note,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:     userID,
		FieldID:    r.FieldID,
		ScheduleID: r.ScheduleID,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Note:       r.Note,
	}
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	FieldID    int64     `json:"fieldId"`
	ScheduleID *int64    `json:"scheduleId,omitempty"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		FieldID:    resp.FieldID,
		ScheduleID: resp.ScheduleID,
		StartTime:  resp.StartTime,
		EndTime:    resp.EndTime,
		Price:      resp.Price,
		Status:     resp.Status,
		Note:       resp.Note,
		CreatedAt:  resp.CreatedAt,
		UpdatedAt:  resp.UpdatedAt,
	}
}
