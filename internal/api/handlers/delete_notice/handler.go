package delete_notice

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
	"github.com/smartpark/SP-BookingService/internal/api/middleware"
	"github.com/smartpark/SP-BookingService/internal/service/notices"
)

const (
	msgInvalidNoticeID = "некорректный ID объявления"
	msgNotFound        = "объявление не найдено"
	msgForbidden       = "требуется роль администратора"
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

// Handle DELETE /api/v1/notices/{noticeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	noticeID, err := strconv.ParseInt(vars["noticeId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /notices/{id} - Invalid notice ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNoticeID)
		return
	}

	role := middleware.GetUserRole(r.Context())

	if err := h.service.Delete(r.Context(), noticeID, role); err != nil {
		switch {
		case errors.Is(err, notices.ErrAccessDenied):
			h.logger.Warn("DELETE /notices/{id} - Access denied: notice_id=%d, role=%s", noticeID, role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, notices.ErrNoticeNotFound):
			h.logger.Warn("DELETE /notices/{id} - Notice not found: notice_id=%d", noticeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /notices/{id} - Failed to delete notice: notice_id=%d, error=%v", noticeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /notices/{id} - Notice deleted: notice_id=%d", noticeID)
	handlers.RespondNoContent(w)
}
