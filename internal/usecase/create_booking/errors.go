package create_booking

import "errors"

var (
	// ErrFieldNotFound возвращается, когда поле не найдено
	ErrFieldNotFound = errors.New("create_booking: field not found")

	// ErrFieldNotBookable возвращается, когда поле неактивно или на обслуживании
	ErrFieldNotBookable = errors.New("create_booking: field is not bookable")

	// ErrScheduleNotFound возвращается, когда слот расписания не найден
	ErrScheduleNotFound = errors.New("create_booking: schedule slot not found")

	// ErrScheduleMismatch возвращается, когда слот принадлежит другому полю
	ErrScheduleMismatch = errors.New("create_booking: schedule slot belongs to another field")

	// ErrInvalidDate возвращается, когда время начала в прошлом
	ErrInvalidDate = errors.New("create_booking: start time is in the past")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
