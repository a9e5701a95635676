package list_notices

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/service/notices/models"
)

type NoticeService interface {
	List(ctx context.Context) (*models.NoticeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
