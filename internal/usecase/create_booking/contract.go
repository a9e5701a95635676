package create_booking

import (
	"context"
	"time"

	"github.com/smartpark/SP-BookingService/internal/domain"
	"github.com/smartpark/SP-BookingService/internal/integrations/discountservice"
	"github.com/smartpark/SP-BookingService/internal/queue"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindConflicts(ctx context.Context, userID, startTime, endTime int64) ([]*domain.Booking, error)
}

// SpaceRepository интерфейс репозитория парковок
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error)
}

// DiscountOracle интерфейс модели предсказания скидки
type DiscountOracle interface {
	PredictWithGracefulDegradation(ctx context.Context, req *discountservice.PredictRequest) (float64, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	Publish(ctx context.Context, queueName string, event queue.BookingEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
