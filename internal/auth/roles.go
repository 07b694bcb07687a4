package auth

import "github.com/m04kA/FFP-BookingService/internal/domain"

// Capability именованная операция, требующая проверки роли на границе API
type Capability string

const (
	CapBookingCreate   Capability = "booking.create"
	CapBookingRead     Capability = "booking.read"
	CapBookingCancel   Capability = "booking.cancel"
	CapBookingApprove  Capability = "booking.approve"
	CapBookingReject   Capability = "booking.reject"
	CapBookingComplete Capability = "booking.complete"
	CapBookingListAll  Capability = "booking.list_all"

	CapFieldCreate Capability = "field.create"
	CapFieldUpdate Capability = "field.update"
	CapFieldDelete Capability = "field.delete"

	CapReviewCreate Capability = "review.create"

	CapUserList         Capability = "user.list"
	CapUserUpdateStatus Capability = "user.update_status"
	CapUserUpdateRole   Capability = "user.update_role"
)

// capabilityRoles таблица доступа: какие роли допущены к операции
var capabilityRoles = map[Capability][]domain.UserRole{
	CapBookingCreate:   {domain.RoleUser, domain.RoleManager, domain.RoleAdmin},
	CapBookingRead:     {domain.RoleUser, domain.RoleManager, domain.RoleAdmin},
	CapBookingCancel:   {domain.RoleUser, domain.RoleManager, domain.RoleAdmin},
	CapBookingApprove:  {domain.RoleManager, domain.RoleAdmin},
	CapBookingReject:   {domain.RoleManager, domain.RoleAdmin},
	CapBookingComplete: {domain.RoleManager, domain.RoleAdmin},
	CapBookingListAll:  {domain.RoleManager, domain.RoleAdmin},

	CapFieldCreate: {domain.RoleManager, domain.RoleAdmin},
	CapFieldUpdate: {domain.RoleManager, domain.RoleAdmin},
	CapFieldDelete: {domain.RoleAdmin},

	CapReviewCreate: {domain.RoleUser, domain.RoleManager, domain.RoleAdmin},

	CapUserList:         {domain.RoleAdmin},
	CapUserUpdateStatus: {domain.RoleAdmin},
	CapUserUpdateRole:   {domain.RoleAdmin},
}

// RoleAllows проверяет, допущена ли роль к операции
func RoleAllows(role domain.UserRole, cap Capability) bool {
	allowed, ok := capabilityRoles[cap]
	if !ok {
		return false
	}

	for _, r := range allowed {
		if r == role {
			return true
		}
	}

	return false
}
