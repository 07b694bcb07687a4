package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/FFP-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/FFP-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/FFP-BookingService/internal/service/bookings/models"
)

const notifyTimeout = 10 * time.Second

// Service сервис жизненного цикла бронирований
type Service struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	fieldRepo    FieldRepository
	userRepo     UserRepository
	txManager    TransactionManager
	mailer       Mailer
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	fieldRepo FieldRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	mailer Mailer,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		fieldRepo:    fieldRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		mailer:       mailer,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только своё бронирование, персонал - любое
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64, isStaff bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, requesterID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != requesterID && !isStaff {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", requesterID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// List получает бронирования с гибкой фильтрацией
// Доступно персоналу: фильтры по полю, периоду, статусу и включению неактивных бронирований
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Approve подтверждает бронирование
// Слот захватывается атомарно внутри транзакции: из N конкурентных подтверждений
// на один слот успешным будет ровно одно, остальные получат ErrSlotTaken
// SERIALIZABLE защищает путь свободного окна: проверка пересечений и смена
// статуса выполняются как один атомарный шаг, конкурент получит ошибку сериализации
func (s *Service) Approve(ctx context.Context, bookingID int64) error {
	s.logger.Info("Approve: approving booking id=%d", bookingID)

	var booking *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.getForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeApproved() {
			s.logger.Warn("Approve: booking id=%d is not pending, status=%s", bookingID, booking.Status)
			return ErrNotPending
		}

		if booking.ScheduleID != nil {
			// Слот расписания: проверяем существование и захватываем флаг доступности
			if _, err := s.scheduleRepo.GetByID(ctx, *booking.ScheduleID); err != nil {
				if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
					s.logger.Warn("Approve: schedule id=%d not found for booking id=%d", *booking.ScheduleID, bookingID)
					return ErrScheduleNotFound
				}
				return fmt.Errorf("%w: Approve - get schedule: %v", ErrInternal, err)
			}

			if err := s.scheduleRepo.Hold(ctx, *booking.ScheduleID); err != nil {
				if errors.Is(err, scheduleRepo.ErrScheduleTaken) {
					s.logger.Warn("Approve: schedule id=%d already taken, booking id=%d", *booking.ScheduleID, bookingID)
					return ErrSlotTaken
				}
				return fmt.Errorf("%w: Approve - hold schedule: %v", ErrInternal, err)
			}
		} else {
			// Свободное окно: проверяем пересечение с подтвержденными бронированиями
			count, err := s.bookingRepo.CountOverlapping(ctx, booking.FieldID, booking.StartTime, booking.EndTime)
			if err != nil {
				return fmt.Errorf("%w: Approve - count overlapping: %v", ErrInternal, err)
			}
			if count > 0 {
				s.logger.Warn("Approve: window overlaps %d confirmed bookings, booking id=%d", count, bookingID)
				return ErrSlotTaken
			}
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed); err != nil {
			return fmt.Errorf("%w: Approve - update status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Approve: booking id=%d confirmed", bookingID)
	s.notifyAsync(booking, domain.StatusConfirmed)
	return nil
}

// Reject отклоняет бронирование с обязательной причиной
// Причина дописывается к заметке бронирования
func (s *Service) Reject(ctx context.Context, bookingID int64, req *models.RejectBookingRequest) error {
	s.logger.Info("Reject: rejecting booking id=%d", bookingID)

	if req.Reason == "" {
		return fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}

	var booking *domain.Booking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.getForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeRejected() {
			s.logger.Warn("Reject: booking id=%d is not pending, status=%s", bookingID, booking.Status)
			return ErrNotPending
		}

		if err := s.bookingRepo.Reject(ctx, bookingID, req.Reason); err != nil {
			return fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Reject: booking id=%d rejected", bookingID)
	s.notifyAsync(booking, domain.StatusRejected)
	return nil
}

// Complete завершает подтвержденное бронирование и освобождает слот
func (s *Service) Complete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Complete: completing booking id=%d", bookingID)

	var booking *domain.Booking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.getForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeCompleted() {
			s.logger.Warn("Complete: booking id=%d is not confirmed, status=%s", bookingID, booking.Status)
			return ErrNotConfirmed
		}

		if booking.HoldsSlot() {
			if err := s.releaseSlot(ctx, *booking.ScheduleID, bookingID); err != nil {
				return err
			}
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCompleted); err != nil {
			return fmt.Errorf("%w: Complete - update status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Complete: booking id=%d completed", bookingID)
	s.notifyAsync(booking, domain.StatusCompleted)
	return nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование, персонал - любое
// Слот освобождается, если бронирование его удерживало
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	var booking *domain.Booking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.getForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if booking.UserID != req.UserID && !req.IsStaff {
			s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		if booking.HoldsSlot() {
			if err := s.releaseSlot(ctx, *booking.ScheduleID, bookingID); err != nil {
				return err
			}
		}

		if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)
	s.notifyAsync(booking, domain.StatusCancelled)
	return nil
}

// Вспомогательные методы

// getForUpdate получает бронирование внутри транзакции с блокировкой строки
func (s *Service) getForUpdate(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// releaseSlot освобождает слот расписания. Отсутствие слота не считается ошибкой:
// слот мог быть удален вместе с полем
func (s *Service) releaseSlot(ctx context.Context, scheduleID, bookingID int64) error {
	if err := s.scheduleRepo.Release(ctx, scheduleID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("releaseSlot: schedule id=%d not found for booking id=%d", scheduleID, bookingID)
			return nil
		}
		return fmt.Errorf("%w: release schedule: %v", ErrInternal, err)
	}
	return nil
}

// notifyAsync отправляет уведомление об изменении статуса после коммита транзакции
// Ошибки отправки только логируются и не влияют на результат операции
func (s *Service) notifyAsync(booking *domain.Booking, status domain.BookingStatus) {
	if booking == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		user, err := s.userRepo.GetByID(ctx, booking.UserID)
		if err != nil {
			s.logger.Error("notifyAsync: failed to get user id=%d for booking id=%d: %v", booking.UserID, booking.ID, err)
			return
		}

		fieldName := fmt.Sprintf("#%d", booking.FieldID)
		if field, err := s.fieldRepo.GetByID(ctx, booking.FieldID); err == nil {
			fieldName = field.Name
		}

		window := fmt.Sprintf("%s - %s",
			booking.StartTime.Format("02.01.2006 15:04"),
			booking.EndTime.Format("15:04"),
		)

		if err := s.mailer.SendBookingStatusUpdate(ctx, user.Email, fieldName, string(status), window); err != nil {
			s.logger.Error("notifyAsync: failed to notify user id=%d for booking id=%d: %v", booking.UserID, booking.ID, err)
		}
	}()
}
