package list_spaces

import (
	"context"

	"github.com/smartpark/SP-BookingService/internal/service/spaces/models"
)

type SpaceService interface {
	List(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
