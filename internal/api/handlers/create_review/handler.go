package create_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
	"github.com/smartpark/SP-BookingService/internal/api/middleware"
	"github.com/smartpark/SP-BookingService/internal/service/reviews"
	"github.com/smartpark/SP-BookingService/internal/service/reviews/models"
)

const (
	msgInvalidSpaceID     = "некорректный ID парковки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSpaceNotFound      = "парковка не найдена"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/spaces/{spaceId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /spaces/{id}/reviews - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /spaces/{id}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.Create(r.Context(), userID, spaceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidRating):
			h.logger.Warn("POST /spaces/{id}/reviews - Invalid rating: space_id=%d, rating=%d", spaceID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, reviews.ErrSpaceNotFound):
			h.logger.Warn("POST /spaces/{id}/reviews - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /spaces/{id}/reviews - Invalid input: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /spaces/{id}/reviews - Failed to create review: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces/{id}/reviews - Review created: review_id=%d, space_id=%d, user_id=%d",
		review.ID, spaceID, userID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
