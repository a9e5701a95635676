package quote_booking

import (
	"errors"
	"net/http"

	"github.com/smartpark/SP-BookingService/internal/api/handlers"
	quoteBooking "github.com/smartpark/SP-BookingService/internal/usecase/quote_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEndBeforeStart     = "время начала должно быть раньше времени окончания"
	msgSpaceNotFound      = "парковка не найдена"
	msgSpaceInactive      = "парковка недоступна для бронирования"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrEndBeforeStart):
			h.logger.Warn("POST /bookings/quote - End before start: space_id=%d", req.SpaceID)
			handlers.RespondBadRequest(w, msgEndBeforeStart)

		case errors.Is(err, quoteBooking.ErrSpaceNotFound):
			h.logger.Warn("POST /bookings/quote - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, quoteBooking.ErrSpaceInactive):
			h.logger.Warn("POST /bookings/quote - Space inactive: space_id=%d", req.SpaceID)
			handlers.RespondConflict(w, msgSpaceInactive)

		case errors.Is(err, quoteBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/quote - Failed to quote: space_id=%d, error=%v", req.SpaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/quote - Quote computed: space_id=%d, final_cost=%.2f", req.SpaceID, result.FinalCost)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
