package spaces

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда парковка не найдена
	ErrSpaceNotFound = errors.New("parking space not found")

	// ErrAccessDenied возвращается, когда операция требует роли администратора
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
