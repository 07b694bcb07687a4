package fields

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	fieldRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/field"
	"github.com/m04kA/FFP-BookingService/internal/service/fields/models"
)

// Service сервис управления футбольными полями
type Service struct {
	fieldRepo FieldRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса полей
func NewService(fieldRepo FieldRepository, logger Logger) *Service {
	return &Service{
		fieldRepo: fieldRepo,
		logger:    logger,
	}
}

// Create создает новое поле
// Менеджер становится закрепленным за полем, если ManagerID не указан явно
func (s *Service) Create(ctx context.Context, req *models.CreateFieldRequest, requesterID int64, isAdmin bool) (*models.FieldResponse, error) {
	s.logger.Info("Create: creating field name=%q by user=%d", req.Name, requesterID)

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
		return nil, fmt.Errorf("%w: name and address are required", ErrInvalidInput)
	}
	if req.PricePerHour <= 0 {
		return nil, fmt.Errorf("%w: price per hour must be positive", ErrInvalidInput)
	}

	fieldType, err := models.ToDomainFieldType(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	managerID := req.ManagerID
	if managerID == nil && !isAdmin {
		managerID = &requesterID
	}

	field := &domain.Field{
		Name:         strings.TrimSpace(req.Name),
		Address:      strings.TrimSpace(req.Address),
		Type:         fieldType,
		PricePerHour: req.PricePerHour,
		Status:       domain.FieldStatusActive,
		ManagerID:    managerID,
	}

	created, err := s.fieldRepo.Create(ctx, field)
	if err != nil {
		s.logger.Error("Create: repository error for field name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: field id=%d created", created.ID)
	return models.FromDomainField(created), nil
}

// GetByID получает поле по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FieldResponse, error) {
	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("GetByID: field id=%d not found", id)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetByID: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainField(field), nil
}

// List получает список полей с фильтрацией по типу и статусу
func (s *Service) List(ctx context.Context, req *models.ListFieldsRequest) (*models.FieldListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fields, err := s.fieldRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d fields", len(fields))
	return models.FromDomainFieldList(fields), nil
}

// Update частично обновляет поле
// Менеджер может обновлять только закрепленное за ним поле, админ - любое
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateFieldRequest, requesterID int64, isAdmin bool) (*models.FieldResponse, error) {
	s.logger.Info("Update: updating field id=%d by user=%d", id, requesterID)

	field, err := s.fieldRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("Update: field id=%d not found", id)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("Update: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && !field.ManagedBy(requesterID) {
		s.logger.Warn("Update: access denied for user=%d to field id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	if err := applyUpdate(field, req); err != nil {
		s.logger.Warn("Update: invalid input for field id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.fieldRepo.Update(ctx, id, field)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			return nil, ErrFieldNotFound
		}
		s.logger.Error("Update: repository error for field id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: field id=%d updated", id)
	return models.FromDomainField(updated), nil
}

// Delete удаляет поле вместе с расписанием
// Доступно только администратору
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting field id=%d", id)

	if err := s.fieldRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("Delete: field id=%d not found", id)
			return ErrFieldNotFound
		}
		s.logger.Error("Delete: repository error for field id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: field id=%d deleted", id)
	return nil
}

// applyUpdate применяет частичное обновление к domain модели
func applyUpdate(field *domain.Field, req *models.UpdateFieldRequest) error {
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		field.Name = strings.TrimSpace(*req.Name)
	}

	if req.Address != nil {
		if strings.TrimSpace(*req.Address) == "" {
			return fmt.Errorf("%w: address cannot be empty", ErrInvalidInput)
		}
		field.Address = strings.TrimSpace(*req.Address)
	}

	if req.Type != nil {
		fieldType, err := models.ToDomainFieldType(*req.Type)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		field.Type = fieldType
	}

	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return fmt.Errorf("%w: price per hour must be positive", ErrInvalidInput)
		}
		field.PricePerHour = *req.PricePerHour
	}

	if req.Status != nil {
		status, err := models.ToDomainFieldStatus(*req.Status)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		field.Status = status
	}

	if req.ManagerID != nil {
		field.ManagerID = req.ManagerID
	}

	return nil
}
