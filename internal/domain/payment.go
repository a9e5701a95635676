package domain

import "time"

// PaymentStatus статус платежа
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "success"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment represents a recorded payment against a booking.
// The engine only records outcomes, it does not talk to a payment provider.
type Payment struct {
	ID            int64
	BookingID     int64
	UserID        int64
	Amount        float64
	PaymentMethod string
	Status        PaymentStatus
	CreatedAt     time.Time
}

// IsValidPaymentStatus проверяет, что статус платежа допустим
func IsValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentSucceeded, PaymentFailed:
		return true
	default:
		return false
	}
}
