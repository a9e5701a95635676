package notices

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/domain"
)

// NoticeRepository интерфейс репозитория объявлений
type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.Notice) (*domain.Notice, error)
	List(ctx context.Context) ([]*domain.Notice, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
