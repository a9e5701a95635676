package quote_booking

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/domain"
	"github.com/smartpark/SP-BookingService/internal/integrations/discountservice"
)

// SpaceRepository интерфейс репозитория парковок
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error)
}

// DiscountOracle интерфейс модели предсказания скидки
type DiscountOracle interface {
	PredictWithGracefulDegradation(ctx context.Context, req *discountservice.PredictRequest) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
