package list_areas

import (
	"errors"
	"net/http"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
	"github.com/smartpark/SP-BookingService/internal/service/spaces"
)

const msgMissingCity = "не указан город"

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

// Handle GET /api/v1/addresses/areas?city=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	result, err := h.service.ListAreas(r.Context(), city)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("GET /addresses/areas - Missing city")
			handlers.RespondBadRequest(w, msgMissingCity)

		default:
			h.logger.Error("GET /addresses/areas - Failed to list areas: city=%q, error=%v", city, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
