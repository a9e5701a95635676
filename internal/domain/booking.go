package domain

import "time"

// BookingState represents the lifecycle state of a booking
type BookingState string

const (
	StatePending   BookingState = "pending"
	StateConfirmed BookingState = "confirmed"
	StateCompleted BookingState = "completed"
	StateCancelled BookingState = "cancelled"
	StateExpired   BookingState = "expired"
)

// Booking represents a user's claim on a parking space for a time interval.
// StartTime and EndTime are Unix milliseconds, the interval is half-open [StartTime, EndTime).
type Booking struct {
	ID        int64
	UserID    int64
	SpaceID   int64
	StartTime int64
	EndTime   int64

	// TotalCost хранит базовую стоимость ДО применения скидки.
	// DiscountRate хранится отдельно, итоговая цена со скидкой считается на выдаче.
	TotalCost    float64
	DiscountRate float64

	State BookingState

	// Denormalized for history
	SpaceName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in conflict checks
func (b *Booking) IsActive() bool {
	return b.State == StatePending || b.State == StateConfirmed
}

// CanBeConfirmed returns true if the booking can transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.State == StatePending
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.State == StatePending || b.State == StateConfirmed
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.State == StateCompleted || b.State == StateCancelled || b.State == StateExpired
}

// Overlaps reports whether the booking interval overlaps [startTime, endTime)
// under half-open semantics. Back-to-back intervals do not overlap.
func (b *Booking) Overlaps(startTime, endTime int64) bool {
	return b.StartTime < endTime && b.EndTime > startTime
}

// DurationMillis returns the booked interval length in milliseconds
func (b *Booking) DurationMillis() int64 {
	return b.EndTime - b.StartTime
}

// IsValidBookingState проверяет, что значение является допустимым статусом бронирования
func IsValidBookingState(s BookingState) bool {
	switch s {
	case StatePending, StateConfirmed, StateCompleted, StateCancelled, StateExpired:
		return true
	}
	return false
}

// UserBookingsFilter фильтр для получения бронирований пользователя
type UserBookingsFilter struct {
	UserID    int64         // Обязательный параметр
	State     *BookingState // Фильтр по статусу (опционально)
	Keyword   *string       // Поиск по названию парковки (опционально)
	StartTime *int64        // Начало периода создания, unix ms (опционально)
	EndTime   *int64        // Конец периода создания, unix ms (опционально)
}
