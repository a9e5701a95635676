package domain

import "time"

// Location geographic coordinates of a parking space
type Location struct {
	Lat float64
	Lng float64
}

// ParkingSpace represents a bookable parking facility
type ParkingSpace struct {
	ID             int64
	Name           string
	Location       Location
	City           string
	Area           string
	Street         string
	Unit           string
	TotalSlots     int
	AvailableSlots int
	PricePerHour   float64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OccupancyRate returns the fraction of occupied slots, clamped to [0, 1].
// A space with zero total slots reports zero occupancy.
func (s *ParkingSpace) OccupancyRate() float64 {
	if s.TotalSlots <= 0 {
		return 0
	}
	rate := float64(s.TotalSlots-s.AvailableSlots) / float64(s.TotalSlots)
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

// HasCapacity returns true if at least one slot is free
func (s *ParkingSpace) HasCapacity() bool {
	return s.AvailableSlots > 0
}

// IsFull returns true if no slots are free
func (s *ParkingSpace) IsFull() bool {
	return s.AvailableSlots <= 0
}

// SpacesFilter фильтр для получения списка парковок
type SpacesFilter struct {
	City            *string // Фильтр по городу (опционально)
	Area            *string // Фильтр по району (опционально)
	Street          *string // Фильтр по улице (опционально)
	Keyword         *string // Поиск по названию (опционально)
	IncludeInactive bool    // Включать ли деактивированные парковки
}
