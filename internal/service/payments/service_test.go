package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/SP-BookingService/internal/domain"
	bookingRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/booking"
	"github.com/smartpark/SP-BookingService/internal/service/payments/models"
)

type stubPaymentRepo struct {
	payments []*domain.Payment
	nextID   int64

	createErr error
	listErr   error
}

func (s *stubPaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.nextID++
	created := *payment
	created.ID = s.nextID
	s.payments = append(s.payments, &created)
	return &created, nil
}

func (s *stubPaymentRepo) ListByBooking(_ context.Context, bookingID int64) ([]*domain.Payment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var result []*domain.Payment
	for _, p := range s.payments {
		if p.BookingID == bookingID {
			result = append(result, p)
		}
	}
	return result, nil
}

type stubBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (s *stubBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:        10,
		UserID:    42,
		SpaceID:   7,
		StartTime: 1000,
		EndTime:   5000,
		TotalCost: 20,
		State:     domain.StateConfirmed,
	}
}

func TestCreate_RecordsPayment(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := NewService(repo, &stubBookingRepo{booking: confirmedBooking()}, nopLogger{})

	resp, err := svc.Create(context.Background(), 42, 10, &models.CreatePaymentRequest{
		Amount:        18.00,
		PaymentMethod: "credit card",
		Status:        "success",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(10), resp.BookingID)
	assert.Equal(t, 18.00, resp.Amount)
	assert.Equal(t, string(domain.PaymentSucceeded), resp.Status)
	require.Len(t, repo.payments, 1)
}

func TestCreate_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(&stubPaymentRepo{}, &stubBookingRepo{booking: confirmedBooking()}, nopLogger{})

	for _, amount := range []float64{0, -5} {
		_, err := svc.Create(context.Background(), 42, 10, &models.CreatePaymentRequest{
			Amount:        amount,
			PaymentMethod: "credit card",
			Status:        "success",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(&stubPaymentRepo{}, &stubBookingRepo{booking: confirmedBooking()}, nopLogger{})

	_, err := svc.Create(context.Background(), 42, 10, &models.CreatePaymentRequest{
		Amount:        18.00,
		PaymentMethod: "credit card",
		Status:        "refunded",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_RejectsForeignBooking(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := NewService(repo, &stubBookingRepo{booking: confirmedBooking()}, nopLogger{})

	_, err := svc.Create(context.Background(), 99, 10, &models.CreatePaymentRequest{
		Amount:        18.00,
		PaymentMethod: "credit card",
		Status:        "success",
	})
	assert.ErrorIs(t, err, ErrUserMismatch)
	assert.Empty(t, repo.payments)
}

func TestCreate_BookingNotFound(t *testing.T) {
	svc := NewService(&stubPaymentRepo{}, &stubBookingRepo{err: bookingRepo.ErrBookingNotFound}, nopLogger{})

	_, err := svc.Create(context.Background(), 42, 404, &models.CreatePaymentRequest{
		Amount:        18.00,
		PaymentMethod: "credit card",
		Status:        "success",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListByBooking_OwnerOnly(t *testing.T) {
	repo := &stubPaymentRepo{}
	svc := NewService(repo, &stubBookingRepo{booking: confirmedBooking()}, nopLogger{})

	_, err := svc.Create(context.Background(), 42, 10, &models.CreatePaymentRequest{
		Amount:        18.00,
		PaymentMethod: "PayPal",
		Status:        "success",
	})
	require.NoError(t, err)

	resp, err := svc.ListByBooking(context.Background(), 42, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Payments, 1)

	_, err = svc.ListByBooking(context.Background(), 99, 10)
	assert.ErrorIs(t, err, ErrUserMismatch)
}

func TestListByBooking_RepoFailure(t *testing.T) {
	repo := &stubPaymentRepo{listErr: errors.New("connection reset")}
	svc := NewService(repo, &stubBookingRepo{booking: confirmedBooking()}, nopLogger{})

	_, err := svc.ListByBooking(context.Background(), 42, 10)
	assert.ErrorIs(t, err, ErrInternal)
}
