package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUserMismatch возвращается, когда бронирование принадлежит другому пользователю
	ErrUserMismatch = errors.New("booking belongs to another user")

	// ErrInvalidBookingStatus возвращается при подтверждении бронирования не в статусе pending
	ErrInvalidBookingStatus = errors.New("booking is not in pending status")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
