package create_booking

import "time"

// Request модель запроса на создание бронирования.
// Времена в unix ms, интервал полуоткрытый [StartTime, EndTime).
type Request struct {
	UserID    int64
	SpaceID   int64
	StartTime int64
	EndTime   int64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	UserID        int64
	SpaceID       int64
	SpaceName     string
	StartTime     int64
	EndTime       int64
	DurationHours int
	State         string

	// TotalCost - базовая стоимость, именно она сохранена в бронировании.
	// FinalCost - стоимость со скидкой, для отображения.
	TotalCost    float64
	DiscountRate float64
	FinalCost    float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
