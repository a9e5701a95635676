package list_reviews

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	ListBySpace(ctx context.Context, spaceID int64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
