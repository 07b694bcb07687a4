package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	userRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/user"
	"github.com/m04kA/FFP-BookingService/internal/service/users/models"
	"github.com/m04kA/FFP-BookingService/pkg/ptr"
)

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	m := make(map[int64]*domain.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(_ context.Context, filter domain.UsersFilter) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range f.users {
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if filter.Status != nil && u.Status != *filter.Status {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id int64, status domain.UserStatus) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id int64, role domain.UserRole) error {
	u, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.Role = role
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestService_GetByID(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{ID: 1, Name: "Иван", Role: domain.RoleUser, Status: domain.UserStatusActive})
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Иван", resp.Name)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_List_Filter(t *testing.T) {
	repo := newFakeUserRepo(
		&domain.User{ID: 1, Role: domain.RoleUser, Status: domain.UserStatusActive},
		&domain.User{ID: 2, Role: domain.RoleManager, Status: domain.UserStatusActive},
		&domain.User{ID: 3, Role: domain.RoleUser, Status: domain.UserStatusBanned},
	)
	svc := NewService(repo, noopLogger{})

	resp, err := svc.List(context.Background(), &models.ListUsersRequest{Role: ptr.Ptr(string(domain.RoleUser))})
	require.NoError(t, err)
	assert.Len(t, resp.Users, 2)

	resp, err = svc.List(context.Background(), &models.ListUsersRequest{Status: ptr.Ptr(string(domain.UserStatusBanned))})
	require.NoError(t, err)
	assert.Len(t, resp.Users, 1)

	_, err = svc.List(context.Background(), &models.ListUsersRequest{Role: ptr.Ptr("superuser")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{ID: 1, Role: domain.RoleUser, Status: domain.UserStatusActive})
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateUserStatusRequest{Status: string(domain.UserStatusBanned)})
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusBanned, repo.users[1].Status)

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateUserStatusRequest{Status: "deleted"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.UpdateStatus(context.Background(), 42, &models.UpdateUserStatusRequest{Status: string(domain.UserStatusActive)})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_UpdateRole(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{ID: 1, Role: domain.RoleUser, Status: domain.UserStatusActive})
	svc := NewService(repo, noopLogger{})

	err := svc.UpdateRole(context.Background(), 1, &models.UpdateUserRoleRequest{Role: string(domain.RoleManager)})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, repo.users[1].Role)

	err = svc.UpdateRole(context.Background(), 1, &models.UpdateUserRoleRequest{Role: "superuser"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
