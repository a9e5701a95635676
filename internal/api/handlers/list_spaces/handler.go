package list_spaces

import (
	"net/http"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
	"github.com/smartpark/SP-BookingService/internal/api/middleware"
	"github.com/smartpark/SP-BookingService/internal/domain"
	"github.com/smartpark/SP-BookingService/internal/service/spaces/models"
)

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

// Handle GET /api/v1/spaces?city=&area=&street=&q=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := parseQuery(r)

	// Деактивированные парковки видят только администраторы
	if req.IncludeInactive && middleware.GetUserRole(r.Context()) != domain.RoleAdmin {
		req.IncludeInactive = false
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /spaces - Failed to list spaces: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /spaces - Retrieved %d spaces", len(result.Spaces))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) *models.ListSpacesRequest {
	q := r.URL.Query()
	req := &models.ListSpacesRequest{
		IncludeInactive: q.Get("includeInactive") == "true",
	}

	if city := q.Get("city"); city != "" {
		req.City = &city
	}
	if area := q.Get("area"); area != "" {
		req.Area = &area
	}
	if street := q.Get("street"); street != "" {
		req.Street = &street
	}
	if keyword := q.Get("q"); keyword != "" {
		req.Keyword = &keyword
	}

	return req
}
