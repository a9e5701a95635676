package quote_booking

import "errors"

// Ошибки use case расчета стоимости
var (
	ErrInvalidInput     = errors.New("quote_booking: invalid input")
	ErrEndBeforeStart   = errors.New("quote_booking: start time must be before end time")
	ErrSpaceNotFound    = errors.New("quote_booking: parking space not found")
	ErrSpaceInactive    = errors.New("quote_booking: parking space is not active")
	ErrStoreUnavailable = errors.New("quote_booking: storage unavailable")
	ErrInternal         = errors.New("quote_booking: internal error")
)
