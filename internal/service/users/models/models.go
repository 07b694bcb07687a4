package models

import (
	"errors"
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

var (
	// ErrInvalidRole возвращается при некорректной роли
	ErrInvalidRole = errors.New("invalid user role")

	// ErrInvalidStatus возвращается при некорректном статусе пользователя
	ErrInvalidStatus = errors.New("invalid user status")
)

// Request модели

// ListUsersRequest запрос на получение списка пользователей
type ListUsersRequest struct {
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListUsersRequest) ToDomainFilter() (domain.UsersFilter, error) {
	filter := domain.UsersFilter{}

	if r.Role != nil {
		role := domain.UserRole(*r.Role)
		if !domain.ValidRole(role) {
			return filter, ErrInvalidRole
		}
		filter.Role = &role
	}

	if r.Status != nil {
		status := domain.UserStatus(*r.Status)
		if !domain.ValidUserStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateUserStatusRequest запрос на изменение статуса учетной записи
type UpdateUserStatusRequest struct {
	Status string `json:"status"`
}

// UpdateUserRoleRequest запрос на изменение роли пользователя
type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

// Response модели

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
	}

	for _, user := range users {
		if userResp := FromDomainUser(user); userResp != nil {
			resp.Users = append(resp.Users, *userResp)
		}
	}

	return resp
}
