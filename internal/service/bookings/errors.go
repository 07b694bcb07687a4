package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrScheduleNotFound возвращается, когда слот расписания не найден
	ErrScheduleNotFound = errors.New("schedule slot not found")

	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	ErrSlotTaken = errors.New("schedule slot already taken")

	// ErrNotPending возвращается при попытке подтвердить или отклонить бронирование не в статусе pending
	ErrNotPending = errors.New("booking is not pending")

	// ErrNotConfirmed возвращается при попытке завершить бронирование не в статусе confirmed
	ErrNotConfirmed = errors.New("booking is not confirmed")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
