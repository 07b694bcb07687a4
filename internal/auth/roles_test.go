package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FFP-BookingService/internal/domain"
)

func TestRoleAllows(t *testing.T) {
	tests := []struct {
		name string
		role domain.UserRole
		cap  Capability
		want bool
	}{
		{"user creates booking", domain.RoleUser, CapBookingCreate, true},
		{"user cancels booking", domain.RoleUser, CapBookingCancel, true},
		{"user cannot approve", domain.RoleUser, CapBookingApprove, false},
		{"user cannot reject", domain.RoleUser, CapBookingReject, false},
		{"user cannot list field bookings", domain.RoleUser, CapBookingListAll, false},
		{"user cannot manage fields", domain.RoleUser, CapFieldCreate, false},
		{"manager approves booking", domain.RoleManager, CapBookingApprove, true},
		{"manager completes booking", domain.RoleManager, CapBookingComplete, true},
		{"manager updates field", domain.RoleManager, CapFieldUpdate, true},
		{"manager cannot delete field", domain.RoleManager, CapFieldDelete, false},
		{"manager cannot list users", domain.RoleManager, CapUserList, false},
		{"admin deletes field", domain.RoleAdmin, CapFieldDelete, true},
		{"admin lists users", domain.RoleAdmin, CapUserList, true},
		{"admin updates user status", domain.RoleAdmin, CapUserUpdateStatus, true},
		{"unknown capability denied", domain.RoleAdmin, Capability("unknown"), false},
		{"unknown role denied", domain.UserRole("ghost"), CapBookingCreate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleAllows(tt.role, tt.cap))
		})
	}
}
