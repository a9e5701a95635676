package delete_space

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
	"github.com/smartpark/SP-BookingService/internal/api/middleware"
	"github.com/smartpark/SP-BookingService/internal/service/spaces"
)

const (
	msgInvalidSpaceID = "некорректный ID парковки"
	msgNotFound       = "парковка не найдена"
	msgForbidden      = "требуется роль администратора"
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

// Handle DELETE /api/v1/spaces/{spaceId}
// Парковка деактивируется, а не удаляется физически.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	role := middleware.GetUserRole(r.Context())

	if err := h.service.Deactivate(r.Context(), role, spaceID); err != nil {
		switch {
		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("DELETE /spaces/{id} - Access denied: space_id=%d, role=%s", spaceID, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("DELETE /spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /spaces/{id} - Failed to deactivate space: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /spaces/{id} - Space deactivated: space_id=%d", spaceID)
	handlers.RespondNoContent(w)
}
