package bookings

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/FFP-BookingService/internal/service/bookings/models"
)

// Фейки репозиториев для unit тестов

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[int64]*domain.Booking
	overlaps int
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeBookingRepo{bookings: m}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	c := *b
	return &c, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Booking
	for _, b := range f.bookings {
		if filter.FieldID != nil && b.FieldID != *filter.FieldID {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountOverlapping(_ context.Context, _ int64, _, _ time.Time) (int, error) {
	return f.overlaps, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Reject(_ context.Context, id int64, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusRejected
	note := reason
	if b.Note != nil && *b.Note != "" {
		note = *b.Note + "\n" + reason
	}
	b.Note = &note
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancelledAt = &now
	if reason != "" {
		b.CancellationReason = &reason
	}
	return nil
}

func (f *fakeBookingRepo) status(id int64) domain.BookingStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookings[id].Status
}

type fakeScheduleRepo struct {
	mu    sync.Mutex
	slots map[int64]*domain.FieldSchedule
}

func newFakeScheduleRepo(slots ...*domain.FieldSchedule) *fakeScheduleRepo {
	m := make(map[int64]*domain.FieldSchedule, len(slots))
	for _, s := range slots {
		m[s.ID] = s
	}
	return &fakeScheduleRepo{slots: m}
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id int64) (*domain.FieldSchedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	c := *s
	return &c, nil
}

// Hold имитирует условный UPDATE: захват проходит только если слот свободен
func (f *fakeScheduleRepo) Hold(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return scheduleRepo.ErrScheduleNotFound
	}
	if !s.IsAvailable {
		return scheduleRepo.ErrScheduleTaken
	}
	s.IsAvailable = false
	return nil
}

func (f *fakeScheduleRepo) Release(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return scheduleRepo.ErrScheduleNotFound
	}
	s.IsAvailable = true
	return nil
}

func (f *fakeScheduleRepo) available(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slots[id].IsAvailable
}

type fakeFieldRepo struct {
	fields map[int64]*domain.Field
}

func (f *fakeFieldRepo) GetByID(_ context.Context, id int64) (*domain.Field, error) {
	field, ok := f.fields[id]
	if !ok {
		return nil, assert.AnError
	}
	return field, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, assert.AnError
	}
	return u, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailer) SendBookingStatusUpdate(_ context.Context, _, _, status, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, status)
	return nil
}

// fakeTxManager выполняет замыкание без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// recordingTxManager фиксирует, под каким уровнем изоляции выполнялось замыкание
type recordingTxManager struct {
	serializable int
	plain        int
}

func (m *recordingTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.plain++
	return fn(ctx)
}

func (m *recordingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.serializable++
	return fn(ctx)
}

func (m *recordingTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(bookings *fakeBookingRepo, schedules *fakeScheduleRepo) *Service {
	return NewService(
		bookings,
		schedules,
		&fakeFieldRepo{fields: map[int64]*domain.Field{}},
		&fakeUserRepo{users: map[int64]*domain.User{}},
		fakeTxManager{},
		&fakeMailer{},
		noopLogger{},
	)
}

func slotBooking(id, scheduleID int64, status domain.BookingStatus) *domain.Booking {
	sid := scheduleID
	return &domain.Booking{
		ID:         id,
		UserID:     100,
		FieldID:    1,
		ScheduleID: &sid,
		StartTime:  time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC),
		Status:     status,
	}
}

func windowBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    100,
		FieldID:   1,
		StartTime: time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 5, 11, 30, 0, 0, time.UTC),
		Status:    status,
	}
}

func TestService_Approve_SlotBooking(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusPending))
	schedules := newFakeScheduleRepo(&domain.FieldSchedule{ID: 10, FieldID: 1, IsAvailable: true})
	svc := newTestService(bookings, schedules)

	err := svc.Approve(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, bookings.status(1))
	assert.False(t, schedules.available(10), "approved booking must hold the slot")
}

func TestService_Approve_ConcurrentApprovals_OnlyOneWins(t *testing.T) {
	// Несколько pending бронирований на один слот: подтверждается ровно одно
	const contenders = 8

	var seed []*domain.Booking
	for i := int64(1); i <= contenders; i++ {
		seed = append(seed, slotBooking(i, 10, domain.StatusPending))
	}
	bookings := newFakeBookingRepo(seed...)
	schedules := newFakeScheduleRepo(&domain.FieldSchedule{ID: 10, FieldID: 1, IsAvailable: true})
	svc := newTestService(bookings, schedules)

	var wg sync.WaitGroup
	results := make([]error, contenders)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Approve(context.Background(), int64(i+1))
		}(i)
	}
	wg.Wait()

	confirmed := 0
	for _, err := range results {
		if err == nil {
			confirmed++
		} else {
			assert.ErrorIs(t, err, ErrSlotTaken)
		}
	}
	assert.Equal(t, 1, confirmed, "exactly one approval must win the slot")
}

func TestService_Approve_NotPending(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusConfirmed))
	schedules := newFakeScheduleRepo(&domain.FieldSchedule{ID: 10, FieldID: 1, IsAvailable: false})
	svc := newTestService(bookings, schedules)

	err := svc.Approve(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotPending)
}

func TestService_Approve_ScheduleMissing(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 99, domain.StatusPending))
	schedules := newFakeScheduleRepo()
	svc := newTestService(bookings, schedules)

	err := svc.Approve(context.Background(), 1)

	assert.ErrorIs(t, err, ErrScheduleNotFound)
	assert.Equal(t, domain.StatusPending, bookings.status(1))
}

func TestService_Approve_FreeWindow(t *testing.T) {
	bookings := newFakeBookingRepo(windowBooking(1, domain.StatusPending))
	svc := newTestService(bookings, newFakeScheduleRepo())

	err := svc.Approve(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, bookings.status(1))
}

func TestService_Approve_FreeWindowOverlap(t *testing.T) {
	bookings := newFakeBookingRepo(windowBooking(1, domain.StatusPending))
	bookings.overlaps = 1
	svc := newTestService(bookings, newFakeScheduleRepo())

	err := svc.Approve(context.Background(), 1)

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, domain.StatusPending, bookings.status(1))
}

func TestService_Approve_FreeWindowRunsSerializable(t *testing.T) {
	// Проверка пересечений и смена статуса идут одним сериализуемым шагом,
	// иначе два конкурентных одобрения пересекающихся окон подтвердятся оба
	bookings := newFakeBookingRepo(windowBooking(1, domain.StatusPending))
	txm := &recordingTxManager{}
	svc := NewService(
		bookings,
		newFakeScheduleRepo(),
		&fakeFieldRepo{fields: map[int64]*domain.Field{}},
		&fakeUserRepo{users: map[int64]*domain.User{}},
		txm,
		&fakeMailer{},
		noopLogger{},
	)

	err := svc.Approve(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 1, txm.serializable)
	assert.Zero(t, txm.plain)
}

func TestService_Approve_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeScheduleRepo())

	err := svc.Approve(context.Background(), 404)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Reject(t *testing.T) {
	seed := slotBooking(1, 10, domain.StatusPending)
	note := "просьба позвонить заранее"
	seed.Note = &note
	bookings := newFakeBookingRepo(seed)
	svc := newTestService(bookings, newFakeScheduleRepo())

	err := svc.Reject(context.Background(), 1, &models.RejectBookingRequest{Reason: "поле на ремонте"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, bookings.status(1))
	rejected, _ := bookings.GetByID(context.Background(), 1)
	require.NotNil(t, rejected.Note)
	assert.Equal(t, "просьба позвонить заранее\nполе на ремонте", *rejected.Note)
}

func TestService_Reject_ReasonRequired(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusPending))
	svc := newTestService(bookings, newFakeScheduleRepo())

	err := svc.Reject(context.Background(), 1, &models.RejectBookingRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, domain.StatusPending, bookings.status(1))
}

func TestService_Reject_NotPending(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusCancelled))
	svc := newTestService(bookings, newFakeScheduleRepo())

	err := svc.Reject(context.Background(), 1, &models.RejectBookingRequest{Reason: "поздно"})

	assert.ErrorIs(t, err, ErrNotPending)
}

func TestService_Complete_ReleasesSlot(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusConfirmed))
	schedules := newFakeScheduleRepo(&domain.FieldSchedule{ID: 10, FieldID: 1, IsAvailable: false})
	svc := newTestService(bookings, schedules)

	err := svc.Complete(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, bookings.status(1))
	assert.True(t, schedules.available(10), "completed booking must release the slot")
}

func TestService_Complete_Twice(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusConfirmed))
	schedules := newFakeScheduleRepo(&domain.FieldSchedule{ID: 10, FieldID: 1, IsAvailable: false})
	svc := newTestService(bookings, schedules)

	require.NoError(t, svc.Complete(context.Background(), 1))
	err := svc.Complete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestService_Complete_NotConfirmed(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusPending))
	svc := newTestService(bookings, newFakeScheduleRepo())

	err := svc.Complete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestService_Cancel_PendingByOwner(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusPending))
	schedules := newFakeScheduleRepo(&domain.FieldSchedule{ID: 10, FieldID: 1, IsAvailable: true})
	svc := newTestService(bookings, schedules)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 100})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, bookings.status(1))
	// pending бронирование слот не держало, флаг не трогаем
	assert.True(t, schedules.available(10))
}

func TestService_Cancel_ConfirmedReleasesSlot(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusConfirmed))
	schedules := newFakeScheduleRepo(&domain.FieldSchedule{ID: 10, FieldID: 1, IsAvailable: false})
	svc := newTestService(bookings, schedules)

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 100, CancellationReason: "передумал"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, bookings.status(1))
	assert.True(t, schedules.available(10), "cancelled booking must release the held slot")
}

func TestService_Cancel_SlotGoneWithField(t *testing.T) {
	// Слот удален вместе с полем: отмена все равно проходит
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusConfirmed))
	svc := newTestService(bookings, newFakeScheduleRepo())

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 100})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, bookings.status(1))
}

func TestService_Cancel_AccessDenied(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusPending))
	svc := newTestService(bookings, newFakeScheduleRepo())

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 200})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, bookings.status(1))
}

func TestService_Cancel_StaffOverridesOwnership(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusPending))
	svc := newTestService(bookings, newFakeScheduleRepo())

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 200, IsStaff: true})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, bookings.status(1))
}

func TestService_Cancel_Terminal(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusCompleted))
	svc := newTestService(bookings, newFakeScheduleRepo())

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 100})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_GetByID_OwnershipCheck(t *testing.T) {
	bookings := newFakeBookingRepo(slotBooking(1, 10, domain.StatusPending))
	svc := newTestService(bookings, newFakeScheduleRepo())

	resp, err := svc.GetByID(context.Background(), 1, 100, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByID(context.Background(), 1, 200, false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err = svc.GetByID(context.Background(), 1, 200, true)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.UserID)
}

func TestService_GetUserBookings_InvalidStatus(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), newFakeScheduleRepo())

	status := "unknown"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 100, Status: &status})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
