package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Overlaps(t *testing.T) {
	// Бронирование [1000, 5000)
	b := &Booking{StartTime: 1000, EndTime: 5000}

	tests := []struct {
		name     string
		start    int64
		end      int64
		expected bool
	}{
		{"inside", 2000, 3000, true},
		{"covers whole", 500, 6000, true},
		{"overlaps left edge", 500, 1500, true},
		{"overlaps right edge", 4500, 6000, true},
		{"same interval", 1000, 5000, true},
		{"back-to-back after", 5000, 6000, false},
		{"back-to-back before", 500, 1000, false},
		{"fully before", 100, 500, false},
		{"fully after", 6000, 7000, false},
		{"touches end by 1ms", 4999, 6000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBooking_StateTransitions(t *testing.T) {
	tests := []struct {
		state      BookingState
		canConfirm bool
		canCancel  bool
		isActive   bool
		isTerminal bool
	}{
		{StatePending, true, true, true, false},
		{StateConfirmed, false, true, true, false},
		{StateCompleted, false, false, false, true},
		{StateCancelled, false, false, false, true},
		{StateExpired, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			b := &Booking{State: tt.state}
			assert.Equal(t, tt.canConfirm, b.CanBeConfirmed())
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
			assert.Equal(t, tt.isActive, b.IsActive())
			assert.Equal(t, tt.isTerminal, b.IsTerminal())
		})
	}
}

func TestIsValidBookingState(t *testing.T) {
	for _, s := range []BookingState{StatePending, StateConfirmed, StateCompleted, StateCancelled, StateExpired} {
		assert.True(t, IsValidBookingState(s))
	}

	assert.False(t, IsValidBookingState("unknown"))
	assert.False(t, IsValidBookingState(""))
}

func TestBooking_DurationMillis(t *testing.T) {
	b := &Booking{StartTime: 1000, EndTime: 5000}
	assert.Equal(t, int64(4000), b.DurationMillis())
}
