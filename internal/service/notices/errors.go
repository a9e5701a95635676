package notices

import "errors"

var (
	// ErrNoticeNotFound возвращается, когда объявление не найдено
	ErrNoticeNotFound = errors.New("notice not found")

	// ErrAccessDenied возвращается, когда операция требует роли администратора
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
