package reviews

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListBySpace(ctx context.Context, spaceID int64) ([]*domain.Review, error)
}

// SpaceRepository интерфейс репозитория парковок
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
