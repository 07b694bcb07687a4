package auth

import "errors"

var (
	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserInactive возвращается, когда учетная запись заблокирована или деактивирована
	ErrUserInactive = errors.New("user account is not active")

	// ErrCodeInvalid возвращается, когда код восстановления не найден или уже использован
	ErrCodeInvalid = errors.New("reset code is invalid")

	// ErrCodeExpired возвращается, когда срок действия кода восстановления истек
	ErrCodeExpired = errors.New("reset code has expired")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
