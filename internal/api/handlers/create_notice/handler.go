package create_notice

import (
	"errors"
	"net/http"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
	"github.com/smartpark/SP-BookingService/internal/api/middleware"
	"github.com/smartpark/SP-BookingService/internal/service/notices"
	"github.com/smartpark/SP-BookingService/internal/service/notices/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "требуется роль администратора"
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

// Handle POST /api/v1/notices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /notices - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateNoticeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	role := middleware.GetUserRole(r.Context())

	notice, err := h.service.Create(r.Context(), userID, role, &req)
	if err != nil {
		switch {
		case errors.Is(err, notices.ErrAccessDenied):
			h.logger.Warn("POST /notices - Access denied: user_id=%d, role=%s", userID, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, notices.ErrInvalidInput):
			h.logger.Warn("POST /notices - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /notices - Failed to create notice: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notices - Notice created: notice_id=%d, user_id=%d", notice.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, notice)
}
