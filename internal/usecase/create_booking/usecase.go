package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartpark/SP-BookingService/internal/domain"
	spaceRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/space"
	"github.com/smartpark/SP-BookingService/internal/integrations/discountservice"
	"github.com/smartpark/SP-BookingService/internal/queue"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	spaceRepo    SpaceRepository
	oracle       DiscountOracle
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spaceRepo SpaceRepository,
	oracle DiscountOracle,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		spaceRepo:    spaceRepo,
		oracle:       oracle,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка конфликтов и вставка выполняются в одной сериализуемой
// транзакции с блокирующим чтением (FOR UPDATE): два параллельных запроса
// одного пользователя на пересекающиеся интервалы не могут оба пройти
// проверку "конфликтов нет" и оба вставиться - один из них либо увидит
// чужую вставку, либо будет перезапущен менеджером транзакций.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, space=%d, interval=[%d, %d)",
		req.UserID, req.SpaceID, req.StartTime, req.EndTime)

	// 1. Валидация формы запроса (до обращения к хранилищу)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now().UnixMilli()

	// 3. Получаем парковку
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CreateBooking: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrStoreUnavailable, err)
	}

	if !space.IsActive {
		uc.logger.Warn("CreateBooking: space id=%d is not active", req.SpaceID)
		return nil, ErrSpaceInactive
	}

	// 4. Считаем базовую стоимость и запрашиваем скидку у модели.
	// При недоступности модели применяется graceful degradation: скидка 0.
	durationHours := domain.BillableHours(req.StartTime, req.EndTime)
	baseCost := domain.Round2(float64(durationHours) * space.PricePerHour)

	rate, err := uc.oracle.PredictWithGracefulDegradation(
		ctx,
		buildPredictRequest(req.StartTime, durationHours, baseCost, space.OccupancyRate()),
	)
	if err != nil && !errors.Is(err, discountservice.ErrServiceDegraded) {
		uc.logger.Error("CreateBooking: discount prediction failed: %v", err)
		return nil, fmt.Errorf("%w: discount prediction: %v", ErrInternal, err)
	}

	cost := domain.CalculateCost(space.PricePerHour, req.StartTime, req.EndTime, domain.ClampRate(rate))

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Проверка конфликтов, временные правила и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Проверка конфликтов - первой: её результат определяет причину
		// отказа, даже если нарушены и временные правила
		conflicts, err := uc.bookingRepo.FindConflicts(txCtx, req.UserID, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to find conflicts: %v", err)
			// %w сохраняет ошибку драйвера для retry-логики менеджера транзакций
			return fmt.Errorf("%w: failed to find conflicts: %w", ErrStoreUnavailable, err)
		}

		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: user=%d has %d conflicting bookings for [%d, %d)",
				req.UserID, len(conflicts), req.StartTime, req.EndTime)
			return ErrConflictingBooking
		}

		// 5.2. Временные правила
		if err := validatePolicy(req.StartTime, req.EndTime, now); err != nil {
			uc.logger.Warn("CreateBooking: policy check failed: %v", err)
			return err
		}

		// 5.3. Создаем бронирование в статусе pending.
		// В TotalCost сохраняется базовая стоимость до скидки.
		booking := &domain.Booking{
			UserID:       req.UserID,
			SpaceID:      req.SpaceID,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			TotalCost:    cost.BaseCost,
			DiscountRate: cost.DiscountRate,
			State:        domain.StatePending,
			SpaceName:    space.Name,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: %w", ErrPersistFailed, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, base_cost=%.2f, discount=%.2f",
		result.ID, result.TotalCost, result.DiscountRate)

	// 6. Публикуем событие (best effort, ошибки не прерывают запрос)
	_ = uc.publisher.Publish(ctx, queue.QueueBookingCreated, queue.BookingEvent{
		BookingID:  result.ID,
		UserID:     result.UserID,
		SpaceID:    result.SpaceID,
		SpaceName:  result.SpaceName,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		TotalCost:  result.TotalCost,
		State:      string(result.State),
		OccurredAt: now,
	})

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		SpaceID:       result.SpaceID,
		SpaceName:     result.SpaceName,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		DurationHours: cost.DurationHours,
		State:         string(result.State),
		TotalCost:     result.TotalCost,
		DiscountRate:  result.DiscountRate,
		FinalCost:     cost.FinalCost,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
