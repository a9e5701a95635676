package spaces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/SP-BookingService/internal/domain"
	spaceRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/space"
	"github.com/smartpark/SP-BookingService/internal/service/spaces/models"
)

type stubRepo struct {
	space  *domain.ParkingSpace
	spaces []*domain.ParkingSpace

	getErr     error
	listErr    error
	slotsErr   error
	addressErr error

	cities  []string
	areas   []string
	streets []string

	areasCity   string
	streetsCity string
	streetsArea string

	created       *domain.ParkingSpace
	updated       *domain.ParkingSpace
	deactivatedID int64
	slotsID       int64
	slotsValue    int
}

func (s *stubRepo) Create(_ context.Context, space *domain.ParkingSpace) (*domain.ParkingSpace, error) {
	s.created = space
	created := *space
	created.ID = 1
	return &created, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.ParkingSpace, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.space, nil
}

func (s *stubRepo) ListWithFilter(_ context.Context, _ domain.SpacesFilter) ([]*domain.ParkingSpace, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.spaces, nil
}

func (s *stubRepo) Update(_ context.Context, space *domain.ParkingSpace) error {
	s.updated = space
	return nil
}

func (s *stubRepo) UpdateAvailableSlots(_ context.Context, id int64, availableSlots int) error {
	if s.slotsErr != nil {
		return s.slotsErr
	}
	s.slotsID = id
	s.slotsValue = availableSlots
	return nil
}

func (s *stubRepo) Deactivate(_ context.Context, id int64) error {
	s.deactivatedID = id
	return nil
}

func (s *stubRepo) ListCities(_ context.Context) ([]string, error) {
	if s.addressErr != nil {
		return nil, s.addressErr
	}
	return s.cities, nil
}

func (s *stubRepo) ListAreas(_ context.Context, city string) ([]string, error) {
	if s.addressErr != nil {
		return nil, s.addressErr
	}
	s.areasCity = city
	return s.areas, nil
}

func (s *stubRepo) ListStreets(_ context.Context, city, area string) ([]string, error) {
	if s.addressErr != nil {
		return nil, s.addressErr
	}
	s.streetsCity = city
	s.streetsArea = area
	return s.streets, nil
}

type stubCache struct {
	cached      []*domain.ParkingSpace
	hit         bool
	setCalls    int
	invalidated int
}

func (c *stubCache) Get(_ context.Context, _ string) ([]*domain.ParkingSpace, bool) {
	return c.cached, c.hit
}

func (c *stubCache) Set(_ context.Context, _ string, spaces []*domain.ParkingSpace) {
	c.setCalls++
	c.cached = spaces
}

func (c *stubCache) Invalidate(_ context.Context) {
	c.invalidated++
	c.cached = nil
	c.hit = false
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSpace() *domain.ParkingSpace {
	return &domain.ParkingSpace{
		ID:             7,
		Name:           "Центральная парковка",
		City:           "Москва",
		TotalSlots:     100,
		AvailableSlots: 40,
		PricePerHour:   10,
		IsActive:       true,
	}
}

func TestList_CachesResult(t *testing.T) {
	repo := &stubRepo{spaces: []*domain.ParkingSpace{testSpace()}}
	c := &stubCache{}
	svc := NewService(repo, c, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListSpacesRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Spaces, 1)
	assert.Equal(t, 1, c.setCalls)

	// Второй запрос обслуживается из кеша
	c.hit = true
	repo.listErr = assert.AnError
	resp, err = svc.List(context.Background(), &models.ListSpacesRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Spaces, 1)
}

func TestCreate_RequiresAdmin(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubCache{}, nopLogger{})

	_, err := svc.Create(context.Background(), domain.RoleUser, &models.CreateSpaceRequest{
		Name:       "Новая парковка",
		TotalSlots: 10,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_InvalidatesCache(t *testing.T) {
	repo := &stubRepo{}
	c := &stubCache{}
	svc := NewService(repo, c, nopLogger{})

	resp, err := svc.Create(context.Background(), domain.RoleAdmin, &models.CreateSpaceRequest{
		Name:         "Новая парковка",
		TotalSlots:   10,
		PricePerHour: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	// Новая парковка создается полностью свободной
	assert.Equal(t, 10, repo.created.AvailableSlots)
	assert.True(t, repo.created.IsActive)
	assert.Equal(t, 1, c.invalidated)
}

func TestCreate_ValidatesFields(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubCache{}, nopLogger{})

	_, err := svc.Create(context.Background(), domain.RoleAdmin, &models.CreateSpaceRequest{
		Name:       "",
		TotalSlots: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), domain.RoleAdmin, &models.CreateSpaceRequest{
		Name:         "Парковка",
		PricePerHour: -1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeactivate_RequiresAdmin(t *testing.T) {
	repo := &stubRepo{}
	c := &stubCache{}
	svc := NewService(repo, c, nopLogger{})

	err := svc.Deactivate(context.Background(), domain.RoleUser, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Deactivate(context.Background(), domain.RoleAdmin, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.deactivatedID)
	assert.Equal(t, 1, c.invalidated)
}

func TestReportOccupancy_UpdatesSlots(t *testing.T) {
	repo := &stubRepo{space: testSpace()}
	c := &stubCache{}
	svc := NewService(repo, c, nopLogger{})

	resp, err := svc.ReportOccupancy(context.Background(), 7, &models.ReportOccupancyRequest{AvailableSlots: 25})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.slotsID)
	assert.Equal(t, 25, repo.slotsValue)
	assert.Equal(t, 1, c.invalidated)
	assert.NotNil(t, resp)
}

func TestReportOccupancy_RejectsNegative(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubCache{}, nopLogger{})

	_, err := svc.ReportOccupancy(context.Background(), 7, &models.ReportOccupancyRequest{AvailableSlots: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReportOccupancy_SpaceNotFound(t *testing.T) {
	repo := &stubRepo{slotsErr: spaceRepo.ErrSpaceNotFound}
	svc := NewService(repo, &stubCache{}, nopLogger{})

	_, err := svc.ReportOccupancy(context.Background(), 404, &models.ReportOccupancyRequest{AvailableSlots: 5})
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestGet_NotFound(t *testing.T) {
	repo := &stubRepo{getErr: spaceRepo.ErrSpaceNotFound}
	svc := NewService(repo, &stubCache{}, nopLogger{})

	_, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestGet_ReportsOccupancyRate(t *testing.T) {
	repo := &stubRepo{space: testSpace()}
	svc := NewService(repo, &stubCache{}, nopLogger{})

	resp, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0.6, resp.OccupancyRate)
}

func TestListCities_ReturnsValues(t *testing.T) {
	repo := &stubRepo{cities: []string{"Казань", "Москва"}}
	svc := NewService(repo, &stubCache{}, nopLogger{})

	resp, err := svc.ListCities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Казань", "Москва"}, resp.Values)
}

func TestListAreas_RequiresCity(t *testing.T) {
	repo := &stubRepo{areas: []string{"Центр"}}
	svc := NewService(repo, &stubCache{}, nopLogger{})

	_, err := svc.ListAreas(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.ListAreas(context.Background(), "Москва")
	require.NoError(t, err)
	assert.Equal(t, []string{"Центр"}, resp.Values)
	assert.Equal(t, "Москва", repo.areasCity)
}

func TestListStreets_RequiresCityAndArea(t *testing.T) {
	repo := &stubRepo{streets: []string{"Тверская"}}
	svc := NewService(repo, &stubCache{}, nopLogger{})

	_, err := svc.ListStreets(context.Background(), "Москва", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	resp, err := svc.ListStreets(context.Background(), "Москва", "Центр")
	require.NoError(t, err)
	assert.Equal(t, []string{"Тверская"}, resp.Values)
	assert.Equal(t, "Центр", repo.streetsArea)
}

func TestListCities_RepoFailure(t *testing.T) {
	repo := &stubRepo{addressErr: assert.AnError}
	svc := NewService(repo, &stubCache{}, nopLogger{})

	_, err := svc.ListCities(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
