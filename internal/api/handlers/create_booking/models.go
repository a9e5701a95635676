package create_booking

import (
	"time"

	createBooking "github.com/smartpark/SP-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model.
// Времена в unix ms, интервал полуоткрытый [startTime, endTime).
type CreateBookingRequest struct {
	SpaceID   int64 `json:"spaceId"`
	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	SpaceID       int64   `json:"spaceId"`
	SpaceName     string  `json:"spaceName"`
	StartTime     int64   `json:"startTime"`
	EndTime       int64   `json:"endTime"`
	DurationHours int     `json:"durationHours"`
	State         string  `json:"state"`
	TotalCost     float64 `json:"totalCost"`
	DiscountRate  float64 `json:"discountRate"`
	FinalCost     float64 `json:"finalCost"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:    userID,
		SpaceID:   r.SpaceID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		SpaceID:       resp.SpaceID,
		SpaceName:     resp.SpaceName,
		StartTime:     resp.StartTime,
		EndTime:       resp.EndTime,
		DurationHours: resp.DurationHours,
		State:         resp.State,
		TotalCost:     resp.TotalCost,
		DiscountRate:  resp.DiscountRate,
		FinalCost:     resp.FinalCost,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
