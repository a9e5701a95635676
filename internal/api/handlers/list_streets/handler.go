package list_streets

import (
	"errors"
	"net/http"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
	"github.com/smartpark/SP-BookingService/internal/service/spaces"
)

const msgMissingCityOrArea = "не указаны город и район"

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/addresses/streets?city=&area=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	city := query.Get("city")
	area := query.Get("area")

	result, err := h.service.ListStreets(r.Context(), city, area)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("GET /addresses/streets - Missing city or area")
			handlers.RespondBadRequest(w, msgMissingCityOrArea)

		default:
			h.logger.Error("GET /addresses/streets - Failed to list streets: city=%q, area=%q, error=%v", city, area, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
