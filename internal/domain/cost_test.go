package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBillableHours(t *testing.T) {
	tests := []struct {
		name     string
		start    int64
		end      int64
		expected int
	}{
		{"exactly one hour", 0, MillisPerHour, 1},
		{"61 minutes rounds up to 2", 0, 61 * 60_000, 2},
		{"one hour plus 1ms rounds up", 0, MillisPerHour + 1, 2},
		{"exactly 24 hours", 0, 24 * MillisPerHour, 24},
		{"half hour rounds up to 1", 0, 30 * 60_000, 1},
		{"empty interval", 1000, 1000, 0},
		{"inverted interval", 5000, 3000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BillableHours(tt.start, tt.end))
		})
	}
}

func TestCalculateCost(t *testing.T) {
	// 3_700_000 ms = 1 час 1 минута 40 секунд, тарифицируется как 2 часа
	cost := CalculateCost(10, 0, 3_700_000, 0)

	assert.Equal(t, 2, cost.DurationHours)
	assert.Equal(t, 20.00, cost.BaseCost)
	assert.Equal(t, 0.0, cost.DiscountRate)
	assert.Equal(t, 20.00, cost.FinalCost)
}

func TestCalculateCost_WithDiscount(t *testing.T) {
	cost := CalculateCost(10, 0, 2*MillisPerHour, 0.15)

	assert.Equal(t, 20.00, cost.BaseCost)
	assert.Equal(t, 0.15, cost.DiscountRate)
	assert.Equal(t, 17.00, cost.FinalCost)
}

func TestCalculateCost_ZeroPrice(t *testing.T) {
	cost := CalculateCost(0, 0, 5*MillisPerHour, 0.5)

	assert.Equal(t, 5, cost.DurationHours)
	assert.Equal(t, 0.0, cost.BaseCost)
	assert.Equal(t, 0.0, cost.FinalCost)
}

func TestCalculateCost_RoundsToCents(t *testing.T) {
	// 3 часа по 3.33 = 9.99; скидка 0.333 округляется до 0.33
	cost := CalculateCost(3.33, 0, 3*MillisPerHour, 0.333)

	assert.Equal(t, 9.99, cost.BaseCost)
	assert.Equal(t, 0.33, cost.DiscountRate)
	assert.Equal(t, 6.69, cost.FinalCost)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.00, Round2(99.999))
}

func TestClampRate(t *testing.T) {
	assert.Equal(t, 0.0, ClampRate(-0.5))
	assert.Equal(t, 0.5, ClampRate(0.5))
	assert.Equal(t, 1.0, ClampRate(1.5))
}
