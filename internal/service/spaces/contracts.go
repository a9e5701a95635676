package spaces

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/domain"
)

// SpaceRepository интерфейс репозитория парковок
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.ParkingSpace) (*domain.ParkingSpace, error)
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpace, error)
	ListWithFilter(ctx context.Context, filter domain.SpacesFilter) ([]*domain.ParkingSpace, error)
	Update(ctx context.Context, space *domain.ParkingSpace) error
	UpdateAvailableSlots(ctx context.Context, id int64, availableSlots int) error
	Deactivate(ctx context.Context, id int64) error
	ListCities(ctx context.Context) ([]string, error)
	ListAreas(ctx context.Context, city string) ([]string, error)
	ListStreets(ctx context.Context, city, area string) ([]string, error)
}

// ListCache кеш списков парковок (может быть выключен - тогда no-op)
type ListCache interface {
	Get(ctx context.Context, key string) ([]*domain.ParkingSpace, bool)
	Set(ctx context.Context, key string, spaces []*domain.ParkingSpace)
	Invalidate(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
