package domain

import "time"

// UserRole closed role enumeration; role checks happen once at the API boundary
type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"
)

// UserStatus account status; accounts are never hard-deleted, only toggled
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusBanned   UserStatus = "banned"
)

// User represents a human actor: customer, manager or admin
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        *string
	PasswordHash string
	Role         UserRole
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive returns true if the account may authenticate
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// IsStaff returns true for manager and admin accounts
func (u *User) IsStaff() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// ValidRole returns true if the value is a known role
func ValidRole(r UserRole) bool {
	return r == RoleUser || r == RoleManager || r == RoleAdmin
}

// ValidUserStatus returns true if the value is a known account status
func ValidUserStatus(s UserStatus) bool {
	return s == UserStatusActive || s == UserStatusInactive || s == UserStatusBanned
}

// UsersFilter filter for listing users
type UsersFilter struct {
	Role   *UserRole
	Status *UserStatus
}
