package models

import (
	"errors"
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

var (
	// ErrInvalidType возвращается при некорректном типе поля
	ErrInvalidType = errors.New("invalid field type")

	// ErrInvalidStatus возвращается при некорректном статусе поля
	ErrInvalidStatus = errors.New("invalid field status")
)

// Request модели

// CreateFieldRequest запрос на создание поля
type CreateFieldRequest struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Type         string  `json:"type"`
	PricePerHour float64 `json:"pricePerHour"`
	ManagerID    *int64  `json:"managerId,omitempty"`
}

// UpdateFieldRequest запрос на обновление поля, все поля опциональны
type UpdateFieldRequest struct {
	Name         *string  `json:"name,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Type         *string  `json:"type,omitempty"`
	PricePerHour *float64 `json:"pricePerHour,omitempty"`
	Status       *string  `json:"status,omitempty"`
	ManagerID    *int64   `json:"managerId,omitempty"`
}

// ListFieldsRequest запрос на получение списка полей с фильтрацией
type ListFieldsRequest struct {
	Type   *string `json:"type,omitempty"`
	Status *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListFieldsRequest) ToDomainFilter() (domain.FieldsFilter, error) {
	filter := domain.FieldsFilter{}

	if r.Type != nil {
		fieldType, err := ToDomainFieldType(*r.Type)
		if err != nil {
			return filter, err
		}
		filter.Type = &fieldType
	}

	if r.Status != nil {
		status, err := ToDomainFieldStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// FieldResponse ответ с данными поля
type FieldResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Type         string    `json:"type"`
	PricePerHour float64   `json:"pricePerHour"`
	Status       string    `json:"status"`
	ManagerID    *int64    `json:"managerId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FieldListResponse ответ со списком полей
type FieldListResponse struct {
	Fields []FieldResponse `json:"fields"`
}

// Методы конвертации

// FromDomainField конвертирует domain модель в DTO
func FromDomainField(f *domain.Field) *FieldResponse {
	if f == nil {
		return nil
	}

	return &FieldResponse{
		ID:           f.ID,
		Name:         f.Name,
		Address:      f.Address,
		Type:         string(f.Type),
		PricePerHour: f.PricePerHour,
		Status:       string(f.Status),
		ManagerID:    f.ManagerID,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// FromDomainFieldList конвертирует список domain моделей в DTO
func FromDomainFieldList(fields []*domain.Field) *FieldListResponse {
	if fields == nil {
		return &FieldListResponse{
			Fields: []FieldResponse{},
		}
	}

	resp := &FieldListResponse{
		Fields: make([]FieldResponse, len(fields)),
	}

	for i, field := range fields {
		if fieldResp := FromDomainField(field); fieldResp != nil {
			resp.Fields[i] = *fieldResp
		}
	}

	return resp
}

// ToDomainFieldType конвертирует строку в domain.FieldType с валидацией
func ToDomainFieldType(fieldType string) (domain.FieldType, error) {
	t := domain.FieldType(fieldType)

	switch t {
	case domain.FieldTypeFiveASide, domain.FieldTypeSevenASide, domain.FieldTypeElevenASide:
		return t, nil
	}

	return "", ErrInvalidType
}

// ToDomainFieldStatus конвертирует строку в domain.FieldStatus с валидацией
func ToDomainFieldStatus(status string) (domain.FieldStatus, error) {
	s := domain.FieldStatus(status)

	switch s {
	case domain.FieldStatusActive, domain.FieldStatusInactive, domain.FieldStatusMaintenance:
		return s, nil
	}

	return "", ErrInvalidStatus
}
