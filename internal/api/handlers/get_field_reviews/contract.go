package get_field_reviews

import (
	"context"

	"github.com/m04kA/FFP-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	GetByField(ctx context.Context, fieldID int64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
