package list_notices

import (
	"net/http"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
)

type Handler struct {
	service NoticeService
	logger  Logger
}

func NewHandler(service NoticeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /notices - Failed to list notices: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
