package create_booking

import "errors"

// Причины отказа перечислены в порядке проверки. Первая нарушенная
// проверка определяет возвращаемую причину.
var (
	// ErrConflictingBooking возвращается, когда интервал пересекается с
	// активным бронированием пользователя
	ErrConflictingBooking = errors.New("create_booking: conflicting booking exists")

	// ErrEndBeforeStart возвращается, когда время окончания не позже времени начала
	ErrEndBeforeStart = errors.New("create_booking: end time must be after start time")

	// ErrStartInPast возвращается, когда время начала не в будущем
	ErrStartInPast = errors.New("create_booking: start time must be in the future")

	// ErrDurationExceeds24h возвращается, когда длительность строго больше 24 часов
	ErrDurationExceeds24h = errors.New("create_booking: duration exceeds 24 hours")

	// ErrStartBeyond7Days возвращается, когда начало дальше 7 дней от текущего момента
	ErrStartBeyond7Days = errors.New("create_booking: start time is beyond 7 days")
)

var (
	// ErrSpaceNotFound возвращается, когда парковка не найдена
	ErrSpaceNotFound = errors.New("create_booking: parking space not found")

	// ErrSpaceInactive возвращается, когда парковка деактивирована
	ErrSpaceInactive = errors.New("create_booking: parking space is not active")

	// ErrInvalidInput возвращается при некорректных входных данных.
	// Проверяется до любого обращения к хранилищу.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStoreUnavailable возвращается при ошибке чтения из хранилища.
	// Чтение идемпотентно, вызывающая сторона может повторить запрос.
	ErrStoreUnavailable = errors.New("create_booking: store unavailable")

	// ErrPersistFailed возвращается, когда валидация прошла, но вставка
	// бронирования не удалась
	ErrPersistFailed = errors.New("create_booking: failed to persist booking")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
