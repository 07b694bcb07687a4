package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда слот не найден
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrScheduleTaken возвращается, когда слот уже занят
	// Условный UPDATE не затронул ни одной строки - слот держит другое бронирование
	ErrScheduleTaken = errors.New("schedule.repository: schedule already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
