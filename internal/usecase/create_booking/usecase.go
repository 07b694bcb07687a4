package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	fieldRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/field"
	scheduleRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/schedule"
)

// UseCase use case для создания бронирования
// Заявка создается оптимистично: конфликт со слотом или другим бронированием
// выявляется при подтверждении, побеждает первая подтвержденная заявка
type UseCase struct {
	bookingRepo  BookingRepository
	fieldRepo    FieldRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		fieldRepo:    fieldRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, field=%d, schedule=%v", req.UserID, req.FieldID, req.ScheduleID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateNote(req.Note); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Проверяем, что поле существует и принимает бронирования
	field, err := uc.fieldRepo.GetByID(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			uc.logger.Warn("CreateBooking: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		uc.logger.Error("CreateBooking: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: failed to get field: %v", ErrInternal, err)
	}

	if !field.IsBookable() {
		uc.logger.Warn("CreateBooking: field id=%d is not bookable, status=%s", field.ID, field.Status)
		return nil, ErrFieldNotBookable
	}

	// 3. Определяем окно бронирования: из слота расписания или из запроса
	var start, end time.Time

	if req.ScheduleID != nil {
		schedule, err := uc.scheduleRepo.GetByID(ctx, *req.ScheduleID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateBooking: schedule id=%d not found", *req.ScheduleID)
				return nil, ErrScheduleNotFound
			}
			uc.logger.Error("CreateBooking: failed to get schedule id=%d: %v", *req.ScheduleID, err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		if schedule.FieldID != req.FieldID {
			uc.logger.Warn("CreateBooking: schedule id=%d belongs to field=%d, not field=%d",
				schedule.ID, schedule.FieldID, req.FieldID)
			return nil, ErrScheduleMismatch
		}

		if !schedule.IsAvailable {
			// Заявку все равно принимаем: слот может освободиться до подтверждения
			uc.logger.Warn("CreateBooking: schedule id=%d is currently held", schedule.ID)
		}

		start, end = schedule.StartTime, schedule.EndTime

		if start.Before(now) {
			uc.logger.Warn("CreateBooking: schedule id=%d is in the past", schedule.ID)
			return nil, ErrInvalidDate
		}
	} else {
		start, end = *req.StartTime, *req.EndTime

		if err := validateWindow(start, end, now); err != nil {
			uc.logger.Warn("CreateBooking: window validation failed: %v", err)
			return nil, err
		}
	}

	// 4. Денормализуем стоимость из цены поля
	price := field.PricePerHour * end.Sub(start).Hours()

	var result *domain.Booking

	// 5. Создаем заявку в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.CountOverlapping(txCtx, req.FieldID, start, end)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
		}

		if overlapping > 0 {
			// Окно уже занято подтвержденным бронированием, но заявку принимаем:
			// конфликт разрешится при подтверждении
			uc.logger.Warn("CreateBooking: window overlaps %d confirmed bookings, field=%d", overlapping, req.FieldID)
		}

		booking := &domain.Booking{
			UserID:     req.UserID,
			FieldID:    req.FieldID,
			ScheduleID: req.ScheduleID,
			StartTime:  start,
			EndTime:    end,
			Price:      price,
			Note:       req.Note,
			Status:     domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d, field=%d, window=%s - %s",
		result.ID, result.FieldID, result.StartTime.Format(time.RFC3339), result.EndTime.Format(time.RFC3339))

	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		FieldID:    result.FieldID,
		ScheduleID: result.ScheduleID,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		Price:      result.Price,
		Status:     string(result.Status),
		Note:       result.Note,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
