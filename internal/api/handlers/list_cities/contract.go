package list_cities

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/service/spaces/models"
)

type SpaceService interface {
	ListCities(ctx context.Context) (*models.AddressValuesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
