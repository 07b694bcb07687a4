package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	userRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/user"
	"github.com/m04kA/FFP-BookingService/internal/service/users/models"
)

// Service сервис администрирования пользователей
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// List получает список пользователей с фильтрацией по роли и статусу
func (s *Service) List(ctx context.Context, req *models.ListUsersRequest) (*models.UserListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// UpdateStatus меняет статус учетной записи
// Учетные записи не удаляются физически, только деактивируются или блокируются
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateUserStatusRequest) error {
	s.logger.Info("UpdateStatus: updating user id=%d to status=%s", id, req.Status)

	status := domain.UserStatus(req.Status)
	if !domain.ValidUserStatus(status) {
		s.logger.Warn("UpdateStatus: invalid status=%s for user id=%d", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateStatus: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("UpdateStatus: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: user id=%d status set to %s", id, status)
	return nil
}

// UpdateRole меняет роль пользователя
func (s *Service) UpdateRole(ctx context.Context, id int64, req *models.UpdateUserRoleRequest) error {
	s.logger.Info("UpdateRole: updating user id=%d to role=%s", id, req.Role)

	role := domain.UserRole(req.Role)
	if !domain.ValidRole(role) {
		s.logger.Warn("UpdateRole: invalid role=%s for user id=%d", req.Role, id)
		return fmt.Errorf("%w: invalid role", ErrInvalidInput)
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateRole: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("UpdateRole: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateRole - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRole: user id=%d role set to %s", id, role)
	return nil
}
