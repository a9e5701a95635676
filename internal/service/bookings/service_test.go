package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/SP-BookingService/internal/domain"
	bookingRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/booking"
	"github.com/smartpark/SP-BookingService/internal/queue"
	"github.com/smartpark/SP-BookingService/internal/service/bookings/models"
)

type stubRepo struct {
	booking  *domain.Booking
	bookings []*domain.Booking

	getErr    error
	listErr   error
	updateErr error

	updatedID    int64
	updatedState domain.BookingState
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.booking, nil
}

func (s *stubRepo) GetByUserWithFilter(_ context.Context, _ domain.UserBookingsFilter) ([]*domain.Booking, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.bookings, nil
}

func (s *stubRepo) UpdateState(_ context.Context, id int64, state domain.BookingState) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updatedID = id
	s.updatedState = state
	return nil
}

type stubPublisher struct {
	mu     sync.Mutex
	queues []string
}

func (s *stubPublisher) Publish(_ context.Context, queueName string, _ queue.BookingEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues = append(s.queues, queueName)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           10,
		UserID:       42,
		SpaceID:      7,
		StartTime:    1000,
		EndTime:      5000,
		TotalCost:    20,
		DiscountRate: 0.1,
		State:        domain.StatePending,
		SpaceName:    "Центральная парковка",
	}
}

func TestGetByID_OwnerOnly(t *testing.T) {
	repo := &stubRepo{booking: pendingBooking()}
	svc := NewService(repo, &stubPublisher{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	// Итоговая цена считается на выдаче из базовой стоимости и скидки
	assert.Equal(t, 18.00, resp.FinalCost)

	_, err = svc.GetByID(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrUserMismatch)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &stubRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, &stubPublisher{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirm_Pending(t *testing.T) {
	repo := &stubRepo{booking: pendingBooking()}
	pub := &stubPublisher{}
	svc := NewService(repo, pub, nopLogger{})

	resp, err := svc.Confirm(context.Background(), 10, 42)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateConfirmed), resp.State)
	assert.Equal(t, domain.StateConfirmed, repo.updatedState)
	assert.Equal(t, []string{queue.QueueBookingConfirmed}, pub.queues)
}

func TestConfirm_RejectsNonPending(t *testing.T) {
	for _, state := range []domain.BookingState{
		domain.StateConfirmed,
		domain.StateCompleted,
		domain.StateCancelled,
		domain.StateExpired,
	} {
		t.Run(string(state), func(t *testing.T) {
			b := pendingBooking()
			b.State = state
			svc := NewService(&stubRepo{booking: b}, &stubPublisher{}, nopLogger{})

			_, err := svc.Confirm(context.Background(), 10, 42)
			assert.ErrorIs(t, err, ErrInvalidBookingStatus)
		})
	}
}

func TestConfirm_RejectsForeignBooking(t *testing.T) {
	repo := &stubRepo{booking: pendingBooking()}
	pub := &stubPublisher{}
	svc := NewService(repo, pub, nopLogger{})

	_, err := svc.Confirm(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrUserMismatch)
	assert.Empty(t, pub.queues)
}

// Проверка статуса идет первой: чужое завершенное бронирование
// отклоняется по статусу, а не по владельцу
func TestConfirm_StateCheckedBeforeOwnership(t *testing.T) {
	b := pendingBooking()
	b.State = domain.StateCompleted
	svc := NewService(&stubRepo{booking: b}, &stubPublisher{}, nopLogger{})

	_, err := svc.Confirm(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrInvalidBookingStatus)
	assert.NotErrorIs(t, err, ErrUserMismatch)
}

func TestCancel_StateCheckedBeforeOwnership(t *testing.T) {
	b := pendingBooking()
	b.State = domain.StateExpired
	svc := NewService(&stubRepo{booking: b}, &stubPublisher{}, nopLogger{})

	_, err := svc.Cancel(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_FromPendingAndConfirmed(t *testing.T) {
	for _, state := range []domain.BookingState{domain.StatePending, domain.StateConfirmed} {
		t.Run(string(state), func(t *testing.T) {
			b := pendingBooking()
			b.State = state
			repo := &stubRepo{booking: b}
			pub := &stubPublisher{}
			svc := NewService(repo, pub, nopLogger{})

			resp, err := svc.Cancel(context.Background(), 10, 42)
			require.NoError(t, err)
			assert.Equal(t, string(domain.StateCancelled), resp.State)
			assert.Equal(t, domain.StateCancelled, repo.updatedState)
			assert.Equal(t, []string{queue.QueueBookingCancelled}, pub.queues)
		})
	}
}

func TestCancel_RejectsTerminalStates(t *testing.T) {
	for _, state := range []domain.BookingState{
		domain.StateCompleted,
		domain.StateCancelled,
		domain.StateExpired,
	} {
		t.Run(string(state), func(t *testing.T) {
			b := pendingBooking()
			b.State = state
			svc := NewService(&stubRepo{booking: b}, &stubPublisher{}, nopLogger{})

			_, err := svc.Cancel(context.Background(), 10, 42)
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestGetUserBookings_InvalidState(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubPublisher{}, nopLogger{})

	bad := "unknown"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		State:  &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_ReturnsList(t *testing.T) {
	repo := &stubRepo{bookings: []*domain.Booking{pendingBooking(), pendingBooking()}}
	svc := NewService(repo, &stubPublisher{}, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestGetUserBookings_RepoFailure(t *testing.T) {
	repo := &stubRepo{listErr: errors.New("connection reset")}
	svc := NewService(repo, &stubPublisher{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42})
	assert.ErrorIs(t, err, ErrInternal)
}
