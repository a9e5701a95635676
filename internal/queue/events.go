// Package queue публикация доменных событий бронирования в RabbitMQ.
// Ошибки публикации логируются и возвращаются, но не прерывают основной
// поток обработки запроса.
package queue

// Имена очередей доменных событий
const (
	QueueBookingCreated   = "booking.created"
	QueueBookingConfirmed = "booking.confirmed"
	QueueBookingCancelled = "booking.cancelled"
)

// BookingEvent событие жизненного цикла бронирования
type BookingEvent struct {
	BookingID  int64   `json:"bookingId"`
	UserID     int64   `json:"userId"`
	SpaceID    int64   `json:"spaceId"`
	SpaceName  string  `json:"spaceName"`
	StartTime  int64   `json:"startTime"`
	EndTime    int64   `json:"endTime"`
	TotalCost  float64 `json:"totalCost"`
	State      string  `json:"state"`
	OccurredAt int64   `json:"occurredAt"` // unix ms
}
