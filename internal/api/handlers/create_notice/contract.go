package create_notice

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/service/notices/models"
)

type NoticeService interface {
	Create(ctx context.Context, userID int64, role string, req *models.CreateNoticeRequest) (*models.NoticeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
