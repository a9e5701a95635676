package create_booking

import (
	"errors"
	"net/http"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
	"github.com/smartpark/SP-BookingService/internal/api/middleware"
	createBooking "github.com/smartpark/SP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgConflict           = "у вас уже есть бронирование на пересекающийся интервал"
	msgEndBeforeStart     = "время начала должно быть раньше времени окончания"
	msgStartInPast        = "время начала должно быть в будущем"
	msgDurationTooLong    = "длительность бронирования не может превышать 24 часа"
	msgStartTooFar        = "бронирование возможно не более чем за 7 дней"
	msgSpaceNotFound      = "парковка не найдена"
	msgSpaceInactive      = "парковка недоступна для бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrConflictingBooking):
			h.logger.Warn("POST /bookings - Conflicting booking: user_id=%d, space_id=%d", userID, req.SpaceID)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, createBooking.ErrEndBeforeStart):
			h.logger.Warn("POST /bookings - End before start: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgEndBeforeStart)

		case errors.Is(err, createBooking.ErrStartInPast):
			h.logger.Warn("POST /bookings - Start in past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createBooking.ErrDurationExceeds24h):
			h.logger.Warn("POST /bookings - Duration exceeds 24h: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgDurationTooLong)

		case errors.Is(err, createBooking.ErrStartBeyond7Days):
			h.logger.Warn("POST /bookings - Start beyond horizon: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgStartTooFar)

		case errors.Is(err, createBooking.ErrSpaceNotFound):
			h.logger.Warn("POST /bookings - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, createBooking.ErrSpaceInactive):
			h.logger.Warn("POST /bookings - Space inactive: space_id=%d", req.SpaceID)
			handlers.RespondConflict(w, msgSpaceInactive)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, space_id=%d, error=%v",
				userID, req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, space_id=%d",
		result.ID, userID, req.SpaceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
