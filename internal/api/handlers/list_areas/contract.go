package list_areas

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/service/spaces/models"
)

type SpaceService interface {
	ListAreas(ctx context.Context, city string) (*models.AddressValuesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
