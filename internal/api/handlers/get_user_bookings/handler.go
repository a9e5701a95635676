package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
	"github.com/smartpark/SP-BookingService/internal/api/middleware"
	"github.com/smartpark/SP-BookingService/internal/domain"
	"github.com/smartpark/SP-BookingService/internal/service/bookings"
	"github.com/smartpark/SP-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidFilter = "некорректные параметры фильтрации"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "можно просматривать только свои бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings?state=&q=&from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Историю чужих бронирований видят только администраторы
	if requesterID != targetUserID && middleware.GetUserRole(r.Context()) != domain.RoleAdmin {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: target=%d, requester=%d", targetUserID, requesterID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	req, err := parseQuery(r, targetUserID)
	if err != nil {
		h.logger.Warn("GET /users/{id}/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/bookings - Invalid filter: user_id=%d, error=%v", targetUserID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%d, error=%v", targetUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Retrieved %d bookings for user_id=%d", len(result.Bookings), targetUserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseQuery собирает фильтр истории из query-параметров
func parseQuery(r *http.Request, userID int64) (*models.GetUserBookingsRequest, error) {
	q := r.URL.Query()
	req := &models.GetUserBookingsRequest{UserID: userID}

	if state := q.Get("state"); state != "" {
		req.State = &state
	}

	if keyword := q.Get("q"); keyword != "" {
		req.Keyword = &keyword
	}

	if from := q.Get("from"); from != "" {
		ms, err := strconv.ParseInt(from, 10, 64)
		if err != nil {
			return nil, err
		}
		req.StartTime = &ms
	}

	if to := q.Get("to"); to != "" {
		ms, err := strconv.ParseInt(to, 10, 64)
		if err != nil {
			return nil, err
		}
		req.EndTime = &ms
	}

	return req, nil
}
