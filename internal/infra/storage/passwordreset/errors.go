package passwordreset

import "errors"

var (
	// ErrCodeNotFound возвращается, когда активный код не найден
	ErrCodeNotFound = errors.New("passwordreset.repository: code not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("passwordreset.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("passwordreset.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("passwordreset.repository: failed to scan row")
)
