package models

import (
	"errors"
	"time"

	"github.com/smartpark/SP-BookingService/internal/domain"
)

var (
	// ErrInvalidState возвращается при некорректном статусе
	ErrInvalidState = errors.New("invalid booking state")
)

// Request модели

// GetUserBookingsRequest запрос на получение истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID    int64   `json:"userId"`
	State     *string `json:"state,omitempty"`     // Фильтр по статусу (опционально)
	Keyword   *string `json:"keyword,omitempty"`   // Поиск по названию парковки (опционально)
	StartTime *int64  `json:"startTime,omitempty"` // Начало периода создания, unix ms (опционально)
	EndTime   *int64  `json:"endTime,omitempty"`   // Конец периода создания, unix ms (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetUserBookingsRequest) ToDomainFilter() (domain.UserBookingsFilter, error) {
	filter := domain.UserBookingsFilter{
		UserID:    r.UserID,
		Keyword:   r.Keyword,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}

	if r.State != nil {
		state, err := ToDomainBookingState(*r.State)
		if err != nil {
			return filter, err
		}
		filter.State = &state
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	SpaceID   int64  `json:"spaceId"`
	SpaceName string `json:"spaceName"`
	StartTime int64  `json:"startTime"` // unix ms
	EndTime   int64  `json:"endTime"`   // unix ms
	State     string `json:"state"`

	// TotalCost - базовая стоимость без скидки, как она сохранена.
	// FinalCost - стоимость со скидкой, вычисляется при отдаче.
	TotalCost    float64 `json:"totalCost"`
	DiscountRate float64 `json:"discountRate"`
	FinalCost    float64 `json:"finalCost"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		SpaceID:      b.SpaceID,
		SpaceName:    b.SpaceName,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		State:        string(b.State),
		TotalCost:    b.TotalCost,
		DiscountRate: b.DiscountRate,
		FinalCost:    domain.Round2(b.TotalCost * (1 - b.DiscountRate)),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingState конвертирует строку в domain.BookingState с валидацией
func ToDomainBookingState(state string) (domain.BookingState, error) {
	s := domain.BookingState(state)

	if !domain.IsValidBookingState(s) {
		return "", ErrInvalidState
	}

	return s, nil
}
