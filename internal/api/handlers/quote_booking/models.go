package quote_booking

import (
	quoteBooking "github.com/smartpark/SP-BookingService/internal/usecase/quote_booking"
)

// QuoteBookingRequest HTTP request model
type QuoteBookingRequest struct {
	SpaceID   int64 `json:"spaceId"`
	StartTime int64 `json:"startTime"`
	EndTime   int64 `json:"endTime"`
}

// QuoteBookingResponse HTTP response model
type QuoteBookingResponse struct {
	SpaceID       int64   `json:"spaceId"`
	SpaceName     string  `json:"spaceName"`
	PricePerHour  float64 `json:"pricePerHour"`
	DurationHours int     `json:"durationHours"`
	BaseCost      float64 `json:"baseCost"`
	DiscountRate  float64 `json:"discountRate"`
	FinalCost     float64 `json:"finalCost"`
	Degraded      bool    `json:"degraded"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteBookingRequest) ToUseCaseRequest() *quoteBooking.Request {
	return &quoteBooking.Request{
		SpaceID:   r.SpaceID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteBookingResponse {
	return &QuoteBookingResponse{
		SpaceID:       resp.SpaceID,
		SpaceName:     resp.SpaceName,
		PricePerHour:  resp.PricePerHour,
		DurationHours: resp.DurationHours,
		BaseCost:      resp.BaseCost,
		DiscountRate:  resp.DiscountRate,
		FinalCost:     resp.FinalCost,
		Degraded:      resp.Degraded,
	}
}
