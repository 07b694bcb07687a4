package fields

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	fieldRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/field"
	"github.com/m04kA/FFP-BookingService/internal/service/fields/models"
	"github.com/m04kA/FFP-BookingService/pkg/ptr"
)

type fakeFieldRepo struct {
	fields map[int64]*domain.Field
	nextID int64
}

func newFakeFieldRepo(fields ...*domain.Field) *fakeFieldRepo {
	m := make(map[int64]*domain.Field, len(fields))
	for _, f := range fields {
		m[f.ID] = f
	}
	return &fakeFieldRepo{fields: m, nextID: 100}
}

func (f *fakeFieldRepo) Create(_ context.Context, field *domain.Field) (*domain.Field, error) {
	f.nextID++
	created := *field
	created.ID = f.nextID
	f.fields[created.ID] = &created
	return &created, nil
}

func (f *fakeFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	field, ok := f.fields[id]
	if !ok {
		return nil, fieldRepo.ErrFieldNotFound
	}
	c := *field
	return &c, nil
}

func (f *fakeFieldRepo) List(_ context.Context, _ domain.FieldsFilter) ([]*domain.Field, error) {
	var out []*domain.Field
	for _, field := range f.fields {
		out = append(out, field)
	}
	return out, nil
}

func (f *fakeFieldRepo) Update(_ context.Context, id int64, field *domain.Field) (*domain.Field, error) {
	if _, ok := f.fields[id]; !ok {
		return nil, fieldRepo.ErrFieldNotFound
	}
	updated := *field
	updated.ID = id
	f.fields[id] = &updated
	return &updated, nil
}

func (f *fakeFieldRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.fields[id]; !ok {
		return fieldRepo.ErrFieldNotFound
	}
	delete(f.fields, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestService_Create_ManagerBecomesAssigned(t *testing.T) {
	repo := newFakeFieldRepo()
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateFieldRequest{
		Name:         "Центральное поле",
		Address:      "ул. Спортивная, 1",
		Type:         string(domain.FieldTypeFiveASide),
		PricePerHour: 1500,
	}, 7, false)

	require.NoError(t, err)
	require.NotNil(t, resp.ManagerID)
	assert.Equal(t, int64(7), *resp.ManagerID, "creating manager must be assigned to the field")
	assert.Equal(t, string(domain.FieldStatusActive), resp.Status)
}

func TestService_Create_AdminWithoutManager(t *testing.T) {
	repo := newFakeFieldRepo()
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateFieldRequest{
		Name:         "Центральное поле",
		Address:      "ул. Спортивная, 1",
		Type:         string(domain.FieldTypeElevenASide),
		PricePerHour: 3000,
	}, 1, true)

	require.NoError(t, err)
	assert.Nil(t, resp.ManagerID, "admin-created field stays unassigned unless requested")
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newFakeFieldRepo(), noopLogger{})

	tests := []struct {
		name string
		req  models.CreateFieldRequest
	}{
		{"empty name", models.CreateFieldRequest{Address: "адрес", Type: string(domain.FieldTypeFiveASide), PricePerHour: 100}},
		{"empty address", models.CreateFieldRequest{Name: "поле", Type: string(domain.FieldTypeFiveASide), PricePerHour: 100}},
		{"zero price", models.CreateFieldRequest{Name: "поле", Address: "адрес", Type: string(domain.FieldTypeFiveASide)}},
		{"unknown type", models.CreateFieldRequest{Name: "поле", Address: "адрес", Type: "rugby", PricePerHour: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req, 7, false)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Update_OwnershipCheck(t *testing.T) {
	repo := newFakeFieldRepo(&domain.Field{
		ID:           1,
		Name:         "Центральное поле",
		Address:      "ул. Спортивная, 1",
		Type:         domain.FieldTypeFiveASide,
		PricePerHour: 1500,
		Status:       domain.FieldStatusActive,
		ManagerID:    ptr.Ptr(int64(7)),
	})
	svc := NewService(repo, noopLogger{})

	// Закрепленный менеджер обновляет свое поле
	resp, err := svc.Update(context.Background(), 1, &models.UpdateFieldRequest{
		PricePerHour: ptr.Ptr(2000.0),
	}, 7, false)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, resp.PricePerHour)

	// Чужой менеджер получает отказ
	_, err = svc.Update(context.Background(), 1, &models.UpdateFieldRequest{
		PricePerHour: ptr.Ptr(1.0),
	}, 8, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Админ обновляет любое поле
	resp, err = svc.Update(context.Background(), 1, &models.UpdateFieldRequest{
		Status: ptr.Ptr(string(domain.FieldStatusMaintenance)),
	}, 99, true)
	require.NoError(t, err)
	assert.Equal(t, string(domain.FieldStatusMaintenance), resp.Status)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newFakeFieldRepo(), noopLogger{})

	_, err := svc.Update(context.Background(), 42, &models.UpdateFieldRequest{}, 1, true)

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeFieldRepo(&domain.Field{ID: 1, Status: domain.FieldStatusActive})
	svc := NewService(repo, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrFieldNotFound)
}
