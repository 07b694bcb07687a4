package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	fieldRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/field"
)

// UseCase use case для получения доступных слотов поля на дату
type UseCase struct {
	bookingRepo  BookingRepository
	fieldRepo    FieldRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		fieldRepo:    fieldRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Доступность слота сверяется и с флагом расписания, и с подтвержденными
// бронированиями на свободные окна этого поля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: field=%d, date=%s", req.FieldID, req.Date.Format(domain.DateFormat))

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что поле существует
	if _, err := uc.fieldRepo.GetByID(ctx, req.FieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("GetAvailableSlots: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	// 3. Границы суток в часовом поясе запрошенной даты
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	// 4. Получаем слоты расписания на дату
	schedules, err := uc.scheduleRepo.ListByFieldBetween(ctx, req.FieldID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedules for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	// 5. Получаем активные бронирования поля на дату
	filter := domain.BookingsFilter{
		FieldID:   &req.FieldID,
		StartDate: &dayStart,
		EndDate:   &dayEnd,
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем доступность каждого слота
	slots := calculateAvailability(schedules, bookings, now)

	uc.logger.Info("GetAvailableSlots: %d slots for field=%d, date=%s",
		len(slots), req.FieldID, req.Date.Format(domain.DateFormat))

	return &Response{
		FieldID: req.FieldID,
		Date:    req.Date,
		Slots:   slots,
	}, nil
}
