package models

import (
	"time"

	"github.com/smartpark/SP-BookingService/internal/domain"
)

// Request модели

// CreateSpaceRequest запрос на создание парковки
type CreateSpaceRequest struct {
	Name         string  `json:"name"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	City         string  `json:"city"`
	Area         string  `json:"area"`
	Street       string  `json:"street"`
	Unit         string  `json:"unit"`
	TotalSlots   int     `json:"totalSlots"`
	PricePerHour float64 `json:"pricePerHour"`
}

// ToDomain конвертирует request в domain модель.
// Новая парковка создается активной и полностью свободной.
func (r *CreateSpaceRequest) ToDomain() *domain.ParkingSpace {
	return &domain.ParkingSpace{
		Name:           r.Name,
		Location:       domain.Location{Lat: r.Lat, Lng: r.Lng},
		City:           r.City,
		Area:           r.Area,
		Street:         r.Street,
		Unit:           r.Unit,
		TotalSlots:     r.TotalSlots,
		AvailableSlots: r.TotalSlots,
		PricePerHour:   r.PricePerHour,
		IsActive:       true,
	}
}

// UpdateSpaceRequest запрос на обновление парковки
type UpdateSpaceRequest struct {
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	City           string  `json:"city"`
	Area           string  `json:"area"`
	Street         string  `json:"street"`
	Unit           string  `json:"unit"`
	TotalSlots     int     `json:"totalSlots"`
	AvailableSlots int     `json:"availableSlots"`
	PricePerHour   float64 `json:"pricePerHour"`
	IsActive       bool    `json:"isActive"`
}

// ListSpacesRequest запрос списка парковок с фильтрацией
type ListSpacesRequest struct {
	City            *string `json:"city,omitempty"`
	Area            *string `json:"area,omitempty"`
	Street          *string `json:"street,omitempty"`
	Keyword         *string `json:"keyword,omitempty"` // Поиск по названию
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSpacesRequest) ToDomainFilter() domain.SpacesFilter {
	return domain.SpacesFilter{
		City:            r.City,
		Area:            r.Area,
		Street:          r.Street,
		Keyword:         r.Keyword,
		IncludeInactive: r.IncludeInactive,
	}
}

// ReportOccupancyRequest отчет сенсора о занятости парковки
type ReportOccupancyRequest struct {
	AvailableSlots int `json:"availableSlots"`
}

// Response модели

// SpaceResponse ответ с данными парковки
type SpaceResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	City           string  `json:"city"`
	Area           string  `json:"area"`
	Street         string  `json:"street"`
	Unit           string  `json:"unit"`
	TotalSlots     int     `json:"totalSlots"`
	AvailableSlots int     `json:"availableSlots"`
	PricePerHour   float64 `json:"pricePerHour"`
	OccupancyRate  float64 `json:"occupancyRate"`
	IsActive       bool    `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SpaceListResponse ответ со списком парковок
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// AddressValuesResponse список значений адресной колонки (города, районы, улицы)
type AddressValuesResponse struct {
	Values []string `json:"values"`
}

// Методы конвертации

// FromDomainSpace конвертирует domain модель в DTO
func FromDomainSpace(s *domain.ParkingSpace) *SpaceResponse {
	if s == nil {
		return nil
	}

	return &SpaceResponse{
		ID:             s.ID,
		Name:           s.Name,
		Lat:            s.Location.Lat,
		Lng:            s.Location.Lng,
		City:           s.City,
		Area:           s.Area,
		Street:         s.Street,
		Unit:           s.Unit,
		TotalSlots:     s.TotalSlots,
		AvailableSlots: s.AvailableSlots,
		PricePerHour:   s.PricePerHour,
		OccupancyRate:  s.OccupancyRate(),
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// FromDomainSpaceList конвертирует список domain моделей в DTO
func FromDomainSpaceList(spaces []*domain.ParkingSpace) *SpaceListResponse {
	resp := &SpaceListResponse{
		Spaces: make([]SpaceResponse, 0, len(spaces)),
	}

	for _, space := range spaces {
		if spaceResp := FromDomainSpace(space); spaceResp != nil {
			resp.Spaces = append(resp.Spaces, *spaceResp)
		}
	}

	return resp
}
