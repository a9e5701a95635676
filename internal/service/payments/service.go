package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartpark/SP-BookingService/internal/domain"
	bookingRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/booking"
	"github.com/smartpark/SP-BookingService/internal/service/payments/models"
)

// Service сервис учета платежей по бронированиям.
// Сервис только записывает исход оплаты, интеграции с платежным
// провайдером здесь нет.
type Service struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create записывает платеж по бронированию от имени его владельца
func (s *Service) Create(ctx context.Context, userID, bookingID int64, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	s.logger.Info("Create: recording payment for booking=%d by user=%d, amount=%.2f", bookingID, userID, req.Amount)

	if req.Amount <= 0 {
		s.logger.Warn("Create: invalid amount=%.2f for booking=%d", req.Amount, bookingID)
		return nil, ErrInvalidAmount
	}

	if req.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}

	status := domain.PaymentStatus(req.Status)
	if !domain.IsValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: unknown payment status", ErrInvalidInput)
	}

	if err := s.checkBookingOwner(ctx, "Create", bookingID, userID); err != nil {
		return nil, err
	}

	created, err := s.paymentRepo.Create(ctx, &domain.Payment{
		BookingID:     bookingID,
		UserID:        userID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully recorded payment id=%d for booking=%d", created.ID, bookingID)
	return models.FromDomainPayment(created), nil
}

// ListByBooking возвращает платежи по бронированию, новые первыми.
// Доступно только владельцу бронирования.
func (s *Service) ListByBooking(ctx context.Context, userID, bookingID int64) (*models.PaymentListResponse, error) {
	if err := s.checkBookingOwner(ctx, "ListByBooking", bookingID, userID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("ListByBooking: repository error for booking=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ListByBooking - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPaymentList(payments), nil
}

// checkBookingOwner проверяет, что бронирование существует и принадлежит userID
func (s *Service) checkBookingOwner(ctx context.Context, op string, bookingID, userID int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("%s: failed to get booking id=%d: %v", op, bookingID, err)
		return fmt.Errorf("%w: %s - failed to get booking: %v", ErrInternal, op, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("%s: booking id=%d belongs to user=%d, requested by user=%d",
			op, bookingID, booking.UserID, userID)
		return ErrUserMismatch
	}

	return nil
}
