package discountservice

// PredictRequest запрос к модели предсказания скидки.
// Поля соответствуют признакам, на которых обучена модель.
type PredictRequest struct {
	Duration      int     `json:"duration"`       // Длительность в часах
	Cost          float64 `json:"cost"`           // Базовая стоимость до скидки
	OccupancyRate float64 `json:"occupancy_rate"` // Доля занятых мест [0, 1]
	TimeOfDay     int     `json:"time_of_day"`    // Час начала бронирования (0-23)
	DayOfWeek     int     `json:"day_of_week"`    // День недели (0=воскресенье, 6=суббота)
	IsWeekend     int     `json:"is_weekend"`     // 1 если выходной, иначе 0
}

// PredictResponse ответ модели предсказания скидки
type PredictResponse struct {
	DiscountRate float64 `json:"discount_rate"`
}
