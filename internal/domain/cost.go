package domain

import "math"

// CostBreakdown результат расчёта стоимости бронирования
type CostBreakdown struct {
	DurationHours int     // Оплачиваемые часы (неполный час округляется вверх)
	BaseCost      float64 // Стоимость до скидки - именно она сохраняется в бронировании
	DiscountRate  float64 // Ставка скидки в [0, 1]
	FinalCost     float64 // Стоимость со скидкой, только для отображения
}

// BillableHours returns the number of billable hours for the half-open
// interval [startTime, endTime). Partial hours round up: a 61-minute
// booking bills two hours.
func BillableHours(startTime, endTime int64) int {
	if endTime <= startTime {
		return 0
	}
	return int(math.Ceil(float64(endTime-startTime) / float64(MillisPerHour)))
}

// CalculateCost computes the cost breakdown for a booking.
// discountRate is expected to be pre-clamped to [0, 1]; it is rounded to
// two decimal places, as is every monetary amount.
func CalculateCost(pricePerHour float64, startTime, endTime int64, discountRate float64) CostBreakdown {
	hours := BillableHours(startTime, endTime)
	baseCost := Round2(float64(hours) * pricePerHour)
	rate := Round2(discountRate)

	return CostBreakdown{
		DurationHours: hours,
		BaseCost:      baseCost,
		DiscountRate:  rate,
		FinalCost:     Round2(baseCost * (1 - rate)),
	}
}

// ClampRate ограничивает ставку скидки диапазоном [0, 1]
func ClampRate(rate float64) float64 {
	if rate < 0 || math.IsNaN(rate) {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}

// Round2 rounds to two decimal places, half away from zero
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
