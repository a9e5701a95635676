package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smartpark/SP-BookingService/internal/domain"
	bookingRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/booking"
	"github.com/smartpark/SP-BookingService/internal/queue"
	"github.com/smartpark/SP-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями:
// получение, история, подтверждение, отмена.
// Создание бронирований живет в usecase/create_booking.
type Service struct {
	bookingRepo BookingRepository
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.fetchOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу, названию парковки и периоду создания
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, state=%v", req.UserID, req.State)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid filter for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: invalid state", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByUserWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Confirm подтверждает бронирование.
// Разрешено только владельцу и только из статуса pending.
// Статус проверяется раньше владельца: причина отказа определяется
// в фиксированном порядке, как и при создании.
// Временные правила повторно не проверяются: бронирование, созданное
// валидным, подтверждается как есть.
func (s *Service) Confirm(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d by user=%d", id, userID)

	booking, err := s.fetch(ctx, "Confirm", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d is in state=%s, cannot confirm", id, booking.State)
		return nil, ErrInvalidBookingStatus
	}

	if err := s.checkOwner(booking, "Confirm", userID); err != nil {
		return nil, err
	}

	if err := s.updateState(ctx, "Confirm", id, domain.StateConfirmed); err != nil {
		return nil, err
	}

	booking.State = domain.StateConfirmed
	booking.UpdatedAt = time.Now()

	s.publishEvent(ctx, queue.QueueBookingConfirmed, booking)

	s.logger.Info("Confirm: successfully confirmed booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование.
// Разрешено владельцу из статусов pending и confirmed.
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", id, userID)

	booking, err := s.fetch(ctx, "Cancel", id)
	if err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d is in state=%s, cannot cancel", id, booking.State)
		return nil, ErrCannotCancel
	}

	if err := s.checkOwner(booking, "Cancel", userID); err != nil {
		return nil, err
	}

	if err := s.updateState(ctx, "Cancel", id, domain.StateCancelled); err != nil {
		return nil, err
	}

	booking.State = domain.StateCancelled
	booking.UpdatedAt = time.Now()

	s.publishEvent(ctx, queue.QueueBookingCancelled, booking)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

// fetch получает бронирование без проверки владельца
func (s *Service) fetch(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return booking, nil
}

// checkOwner проверяет, что бронирование принадлежит userID
func (s *Service) checkOwner(booking *domain.Booking, op string, userID int64) error {
	if booking.UserID != userID {
		s.logger.Warn("%s: booking id=%d belongs to user=%d, requested by user=%d",
			op, booking.ID, booking.UserID, userID)
		return ErrUserMismatch
	}
	return nil
}

// fetchOwned получает бронирование и проверяет, что оно принадлежит userID
func (s *Service) fetchOwned(ctx context.Context, op string, id int64, userID int64) (*domain.Booking, error) {
	booking, err := s.fetch(ctx, op, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwner(booking, op, userID); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *Service) updateState(ctx context.Context, op string, id int64, state domain.BookingState) error {
	if err := s.bookingRepo.UpdateState(ctx, id, state); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found during update", op, id)
			return ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

// publishEvent публикует событие жизненного цикла (best effort)
func (s *Service) publishEvent(ctx context.Context, queueName string, b *domain.Booking) {
	err := s.publisher.Publish(ctx, queueName, queue.BookingEvent{
		BookingID:  b.ID,
		UserID:     b.UserID,
		SpaceID:    b.SpaceID,
		SpaceName:  b.SpaceName,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalCost:  b.TotalCost,
		State:      string(b.State),
		OccurredAt: time.Now().UnixMilli(),
	})
	if err != nil {
		s.logger.Warn("publishEvent: failed to publish %s for booking id=%d: %v", queueName, b.ID, err)
	}
}
