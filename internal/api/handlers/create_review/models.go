package create_review

import (
	"github.com/m04kA/FFP-BookingService/internal/service/reviews/models"
)

// CreateReviewRequest HTTP request model
type CreateReviewRequest struct {
	Rating  int      `json:"rating"`
	Comment *string  `json:"comment,omitempty"`
	Images  []string `json:"images,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateReviewRequest) ToServiceRequest(userID int64) *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		UserID:  userID,
		Rating:  r.Rating,
		Comment: r.Comment,
		Images:  r.Images,
	}
}
