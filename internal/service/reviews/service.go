package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	fieldRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/field"
	"github.com/m04kA/FFP-BookingService/internal/service/reviews/models"
)

// Service сервис отзывов о полях
type Service struct {
	reviewRepo ReviewRepository
	fieldRepo  FieldRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, fieldRepo FieldRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		fieldRepo:  fieldRepo,
		logger:     logger,
	}
}

// Create создает отзыв о поле
// Отзыв не привязан к бронированию: оставить его может любой пользователь
func (s *Service) Create(ctx context.Context, fieldID int64, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: creating review for field=%d by user=%d", fieldID, req.UserID)

	if !domain.ValidRating(req.Rating) {
		s.logger.Warn("Create: invalid rating=%d for field=%d", req.Rating, fieldID)
		return nil, ErrInvalidRating
	}

	if _, err := s.fieldRepo.GetByID(ctx, fieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("Create: field id=%d not found", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("Create: failed to get field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: Create - get field: %v", ErrInternal, err)
	}

	review := &domain.Review{
		UserID:  req.UserID,
		FieldID: fieldID,
		Rating:  req.Rating,
		Comment: req.Comment,
		Images:  req.Images,
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		s.logger.Error("Create: repository error for field=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: review id=%d created for field=%d", created.ID, fieldID)
	return models.FromDomainReview(created), nil
}

// GetByField получает отзывы о поле со средней оценкой
func (s *Service) GetByField(ctx context.Context, fieldID int64) (*models.ReviewListResponse, error) {
	if _, err := s.fieldRepo.GetByID(ctx, fieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("GetByField: field id=%d not found", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetByField: failed to get field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: GetByField - get field: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListByField(ctx, fieldID)
	if err != nil {
		s.logger.Error("GetByField: repository error for field=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: GetByField - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByField: fetched %d reviews for field=%d", len(reviews), fieldID)
	return models.FromDomainReviewList(reviews), nil
}
