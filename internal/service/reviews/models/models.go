package models

import (
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	UserID  int64    `json:"userId"`
	Rating  int      `json:"rating"`
	Comment *string  `json:"comment,omitempty"`
	Images  []string `json:"images,omitempty"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	FieldID   int64     `json:"fieldId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов и средней оценкой
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		FieldID:   r.FieldID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Images:    r.Images,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO с расчетом средней оценки
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews: make([]ReviewResponse, 0, len(reviews)),
	}

	var sum int
	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews = append(resp.Reviews, *reviewResp)
			sum += review.Rating
		}
	}

	if len(resp.Reviews) > 0 {
		resp.AverageRating = float64(sum) / float64(len(resp.Reviews))
	}

	return resp
}
