package create_booking

import (
	"fmt"
	"time"

	"github.com/smartpark/SP-BookingService/internal/domain"
	"github.com/smartpark/SP-BookingService/internal/integrations/discountservice"
)

// validateRequest валидирует форму запроса.
// Проверки формы выполняются до любого обращения к хранилищу.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.StartTime <= 0 {
		return fmt.Errorf("%w: startTime must be positive", ErrInvalidInput)
	}

	if req.EndTime <= 0 {
		return fmt.Errorf("%w: endTime must be positive", ErrInvalidInput)
	}

	return nil
}

// validatePolicy применяет временные правила бронирования в фиксированном
// порядке, первая нарушенная проверка определяет причину отказа.
// Проверка конфликтов выполняется ДО этих правил (см. Execute).
//
// Граничные значения входят в контракт:
//   - startTime == now отклоняется (начало должно быть строго в будущем);
//   - длительность ровно 24 часа допустима, больше - нет;
//   - старт ровно через 7 дней допустим, позже - нет.
func validatePolicy(startTime, endTime, now int64) error {
	if startTime >= endTime {
		return ErrEndBeforeStart
	}

	if startTime <= now {
		return ErrStartInPast
	}

	if endTime-startTime > domain.MaxBookingDurationMillis {
		return ErrDurationExceeds24h
	}

	if startTime > now+domain.BookingHorizonMillis {
		return ErrStartBeyond7Days
	}

	return nil
}

// buildPredictRequest собирает признаки для модели предсказания скидки.
// Временные признаки считаются от момента начала бронирования.
func buildPredictRequest(startTime int64, durationHours int, baseCost, occupancyRate float64) *discountservice.PredictRequest {
	start := time.UnixMilli(startTime)
	dayOfWeek := int(start.Weekday()) // 0=воскресенье, 6=суббота
	isWeekend := 0
	if start.Weekday() == time.Sunday || start.Weekday() == time.Saturday {
		isWeekend = 1
	}

	return &discountservice.PredictRequest{
		Duration:      durationHours,
		Cost:          baseCost,
		OccupancyRate: occupancyRate,
		TimeOfDay:     start.Hour(),
		DayOfWeek:     dayOfWeek,
		IsWeekend:     isWeekend,
	}
}
