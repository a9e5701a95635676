package quote_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smartpark/SP-BookingService/internal/domain"
	spaceRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/space"
	"github.com/smartpark/SP-BookingService/internal/integrations/discountservice"
)

// UseCase use case предварительного расчета стоимости бронирования
type UseCase struct {
	spaceRepo SpaceRepository
	oracle    DiscountOracle
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(spaceRepo SpaceRepository, oracle DiscountOracle, logger Logger) *UseCase {
	return &UseCase{
		spaceRepo: spaceRepo,
		oracle:    oracle,
		logger:    logger,
	}
}

// Execute считает стоимость бронирования без его создания.
// Временные правила (горизонт, длительность) здесь не применяются:
// это предварительный расчет, окончательная проверка - при создании.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: space=%d, interval=[%d, %d)", req.SpaceID, req.StartTime, req.EndTime)

	// 1. Валидация формы запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем парковку
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("QuoteBooking: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("QuoteBooking: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrStoreUnavailable, err)
	}

	if !space.IsActive {
		return nil, ErrSpaceInactive
	}

	// 3. Базовая стоимость
	durationHours := domain.BillableHours(req.StartTime, req.EndTime)
	baseCost := domain.Round2(float64(durationHours) * space.PricePerHour)

	// 4. Скидка от модели с graceful degradation
	degraded := false
	rate, err := uc.oracle.PredictWithGracefulDegradation(ctx, buildPredictRequest(req, durationHours, baseCost, space.OccupancyRate()))
	if err != nil {
		if !errors.Is(err, discountservice.ErrServiceDegraded) {
			uc.logger.Error("QuoteBooking: discount prediction failed: %v", err)
			return nil, fmt.Errorf("%w: discount prediction: %v", ErrInternal, err)
		}
		degraded = true
	}

	cost := domain.CalculateCost(space.PricePerHour, req.StartTime, req.EndTime, domain.ClampRate(rate))

	return &Response{
		SpaceID:       space.ID,
		SpaceName:     space.Name,
		PricePerHour:  space.PricePerHour,
		DurationHours: cost.DurationHours,
		BaseCost:      cost.BaseCost,
		DiscountRate:  cost.DiscountRate,
		FinalCost:     cost.FinalCost,
		Degraded:      degraded,
	}, nil
}

func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}

	if req.StartTime <= 0 || req.EndTime <= 0 {
		return fmt.Errorf("%w: startTime and endTime must be positive", ErrInvalidInput)
	}

	if req.StartTime >= req.EndTime {
		return ErrEndBeforeStart
	}

	return nil
}

func buildPredictRequest(req *Request, durationHours int, baseCost, occupancyRate float64) *discountservice.PredictRequest {
	start := time.UnixMilli(req.StartTime)
	isWeekend := 0
	if start.Weekday() == time.Sunday || start.Weekday() == time.Saturday {
		isWeekend = 1
	}

	return &discountservice.PredictRequest{
		Duration:      durationHours,
		Cost:          baseCost,
		OccupancyRate: occupancyRate,
		TimeOfDay:     start.Hour(),
		DayOfWeek:     int(start.Weekday()),
		IsWeekend:     isWeekend,
	}
}
