package quote_booking

// Request модель запроса на расчет стоимости бронирования
type Request struct {
	SpaceID   int64
	StartTime int64
	EndTime   int64
}

// Response модель ответа с расчетом стоимости.
// Бронирование при этом не создается.
type Response struct {
	SpaceID       int64
	SpaceName     string
	PricePerHour  float64
	DurationHours int
	BaseCost      float64
	DiscountRate  float64
	FinalCost     float64

	// Degraded выставляется, если модель скидок недоступна и
	// применена скидка 0.
	Degraded bool
}
