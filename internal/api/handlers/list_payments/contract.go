package list_payments

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/service/payments/models"
)

type PaymentService interface {
	ListByBooking(ctx context.Context, userID, bookingID int64) (*models.PaymentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
