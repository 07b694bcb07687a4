package domain

import "time"

// FieldType player-count category of a field
type FieldType string

const (
	FieldTypeFiveASide   FieldType = "five_a_side"
	FieldTypeSevenASide  FieldType = "seven_a_side"
	FieldTypeElevenASide FieldType = "eleven_a_side"
)

// FieldStatus operational status of a field
type FieldStatus string

const (
	FieldStatusActive      FieldStatus = "active"
	FieldStatusInactive    FieldStatus = "inactive"
	FieldStatusMaintenance FieldStatus = "maintenance"
)

// Field represents a bookable football venue
type Field struct {
	ID           int64
	Name         string
	Address      string
	Type         FieldType
	PricePerHour float64
	Status       FieldStatus
	ManagerID    *int64 // optional assigned manager
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsBookable returns true if the field accepts new bookings
func (f *Field) IsBookable() bool {
	return f.Status == FieldStatusActive
}

// ManagedBy returns true if the given user is the assigned manager
func (f *Field) ManagedBy(userID int64) bool {
	return f.ManagerID != nil && *f.ManagerID == userID
}

// FieldsFilter filter for listing fields
type FieldsFilter struct {
	Type   *FieldType
	Status *FieldStatus
}
