package create_payment

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/service/payments/models"
)

type PaymentService interface {
	Create(ctx context.Context, userID, bookingID int64, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
