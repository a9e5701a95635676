package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParkingSpace_OccupancyRate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		available int
		expected  float64
	}{
		{"half occupied", 10, 5, 0.5},
		{"empty", 10, 10, 0},
		{"full", 10, 0, 1},
		{"zero total slots", 0, 0, 0},
		{"negative total slots", -1, 0, 0},
		{"available above total clamps to 0", 10, 15, 0},
		{"negative available clamps to 1", 10, -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &ParkingSpace{TotalSlots: tt.total, AvailableSlots: tt.available}
			assert.Equal(t, tt.expected, s.OccupancyRate())
		})
	}
}

func TestParkingSpace_Capacity(t *testing.T) {
	s := &ParkingSpace{TotalSlots: 10, AvailableSlots: 1}
	assert.True(t, s.HasCapacity())
	assert.False(t, s.IsFull())

	s.AvailableSlots = 0
	assert.False(t, s.HasCapacity())
	assert.True(t, s.IsFull())
}
