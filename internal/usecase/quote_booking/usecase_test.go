package quote_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/SP-BookingService/internal/domain"
	spaceRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/space"
	"github.com/smartpark/SP-BookingService/internal/integrations/discountservice"
)

type stubSpaceRepo struct {
	space *domain.ParkingSpace
	err   error
}

func (s *stubSpaceRepo) GetByID(_ context.Context, _ int64) (*domain.ParkingSpace, error) {
	return s.space, s.err
}

type stubOracle struct {
	rate float64
	err  error
}

func (s *stubOracle) PredictWithGracefulDegradation(_ context.Context, _ *discountservice.PredictRequest) (float64, error) {
	return s.rate, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_Quote(t *testing.T) {
	space := &domain.ParkingSpace{
		ID:             7,
		Name:           "Южная парковка",
		TotalSlots:     10,
		AvailableSlots: 5,
		PricePerHour:   12.5,
		IsActive:       true,
	}
	uc := NewUseCase(&stubSpaceRepo{space: space}, &stubOracle{rate: 0.2}, nopLogger{})

	// 90 минут тарифицируются как 2 часа
	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:   7,
		StartTime: 1000,
		EndTime:   1000 + 90*60_000,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.DurationHours)
	assert.Equal(t, 25.00, resp.BaseCost)
	assert.Equal(t, 0.2, resp.DiscountRate)
	assert.Equal(t, 20.00, resp.FinalCost)
	assert.False(t, resp.Degraded)
}

func TestExecute_DegradedOracle(t *testing.T) {
	space := &domain.ParkingSpace{ID: 7, PricePerHour: 10, IsActive: true, TotalSlots: 10, AvailableSlots: 10}
	oracle := &stubOracle{err: discountservice.ErrServiceDegraded}
	uc := NewUseCase(&stubSpaceRepo{space: space}, oracle, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SpaceID:   7,
		StartTime: 1000,
		EndTime:   1000 + domain.MillisPerHour,
	})

	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Equal(t, 0.0, resp.DiscountRate)
	assert.Equal(t, resp.BaseCost, resp.FinalCost)
}

func TestExecute_RejectsInvertedInterval(t *testing.T) {
	uc := NewUseCase(&stubSpaceRepo{}, &stubOracle{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:   7,
		StartTime: 5000,
		EndTime:   3000,
	})
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestExecute_SpaceNotFound(t *testing.T) {
	uc := NewUseCase(&stubSpaceRepo{err: spaceRepo.ErrSpaceNotFound}, &stubOracle{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:   404,
		StartTime: 1000,
		EndTime:   2000,
	})
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestExecute_SpaceInactive(t *testing.T) {
	space := &domain.ParkingSpace{ID: 7, PricePerHour: 10, IsActive: false}
	uc := NewUseCase(&stubSpaceRepo{space: space}, &stubOracle{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SpaceID:   7,
		StartTime: 1000,
		EndTime:   2000,
	})
	assert.ErrorIs(t, err, ErrSpaceInactive)
}
