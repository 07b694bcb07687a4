package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	fieldRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/field"
)

// Фейки репозиториев для unit тестов

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeFieldRepo struct {
	fields map[int64]*domain.Field
}

func (f *fakeFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	field, ok := f.fields[id]
	if !ok {
		return nil, fieldRepo.ErrFieldNotFound
	}
	return field, nil
}

type fakeScheduleRepo struct {
	slots []*domain.FieldSchedule
}

func (f *fakeScheduleRepo) ListByFieldBetween(_ context.Context, _ int64, _, _ time.Time) ([]*domain.FieldSchedule, error) {
	return f.slots, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

func newTestUseCase(bookings *fakeBookingRepo, fields *fakeFieldRepo, schedules *fakeScheduleRepo) *UseCase {
	uc := NewUseCase(bookings, fields, schedules, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func slotAt(id int64, startHour int, available bool) *domain.FieldSchedule {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	return &domain.FieldSchedule{
		ID:          id,
		FieldID:     1,
		StartTime:   day.Add(time.Duration(startHour) * time.Hour),
		EndTime:     day.Add(time.Duration(startHour+3) * time.Hour),
		IsAvailable: available,
	}
}

func TestUseCase_Execute(t *testing.T) {
	fields := &fakeFieldRepo{fields: map[int64]*domain.Field{1: {ID: 1, Status: domain.FieldStatusActive}}}
	schedules := &fakeScheduleRepo{slots: []*domain.FieldSchedule{
		slotAt(1, 6, true),   // уже начался
		slotAt(2, 9, true),   // свободен
		slotAt(3, 12, false), // держит подтвержденное бронирование
		slotAt(4, 15, true),  // свободен
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, fields, schedules)

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 1,
		Date:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)

	byID := make(map[int64]Slot, len(resp.Slots))
	for _, s := range resp.Slots {
		byID[s.ScheduleID] = s
	}

	assert.False(t, byID[1].Available, "started slot is not bookable")
	assert.True(t, byID[2].Available)
	assert.False(t, byID[3].Available, "held slot is not bookable")
	assert.True(t, byID[4].Available)
}

func TestUseCase_Execute_ConfirmedWindowBlocksSlot(t *testing.T) {
	// Подтвержденное бронирование на свободное окно 10:00-13:30
	// перекрывает слоты 09-12 и 12-15, но не 15-18
	fields := &fakeFieldRepo{fields: map[int64]*domain.Field{1: {ID: 1, Status: domain.FieldStatusActive}}}
	schedules := &fakeScheduleRepo{slots: []*domain.FieldSchedule{
		slotAt(1, 9, true),
		slotAt(2, 12, true),
		slotAt(3, 15, true),
	}}
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{
			ID:        1,
			FieldID:   1,
			StartTime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 9, 1, 13, 30, 0, 0, time.UTC),
			Status:    domain.StatusConfirmed,
		},
		{
			// pending заявки доступность не ограничивают
			ID:        2,
			FieldID:   1,
			StartTime: time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC),
			Status:    domain.StatusPending,
		},
	}}
	uc := newTestUseCase(bookings, fields, schedules)

	resp, err := uc.Execute(context.Background(), &Request{
		FieldID: 1,
		Date:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	byID := make(map[int64]Slot, len(resp.Slots))
	for _, s := range resp.Slots {
		byID[s.ScheduleID] = s
	}

	assert.False(t, byID[1].Available)
	assert.False(t, byID[2].Available)
	assert.True(t, byID[3].Available)
}

func TestUseCase_Execute_FieldNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeFieldRepo{fields: map[int64]*domain.Field{}}, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 42,
		Date:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	fields := &fakeFieldRepo{fields: map[int64]*domain.Field{1: {ID: 1, Status: domain.FieldStatusActive}}}
	uc := newTestUseCase(&fakeBookingRepo{}, fields, &fakeScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		FieldID: 1,
		Date:    time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidDate)
}
