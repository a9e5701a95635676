package domain

// Time unit constants (milliseconds)
const (
	MillisPerHour = 3_600_000
	MillisPerDay  = 86_400_000
)

// Booking policy constants
const (
	// MaxBookingDurationMillis максимальная длительность бронирования (24 часа).
	// Ровно 24 часа допустимо, строго больше - нет.
	MaxBookingDurationMillis = 24 * MillisPerHour

	// BookingHorizonMillis горизонт бронирования (7 дней вперёд).
	// Старт ровно через 7 дней допустим, позже - нет.
	BookingHorizonMillis = 7 * MillisPerDay
)

// User roles, приходят в заголовке X-User-Role
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Business validation constants
const (
	MinReviewRating  = 1
	MaxReviewRating  = 5
	MaxCommentLength = 500
	MaxNoticeTitle   = 200
	MaxNoticeContent = 2000
)

// ActiveStates статусы бронирований, участвующих в проверке конфликтов
var ActiveStates = []BookingState{
	StatePending,
	StateConfirmed,
}

// TerminalStates статусы, из которых нет переходов
var TerminalStates = []BookingState{
	StateCompleted,
	StateCancelled,
	StateExpired,
}
