package spaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartpark/SP-BookingService/internal/domain"
	"github.com/smartpark/SP-BookingService/internal/infra/cache"
	spaceRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/space"
	"github.com/smartpark/SP-BookingService/internal/service/spaces/models"
)

// Service сервис инвентаря парковок: список и поиск для пользователей,
// CRUD для администраторов, приём отчетов о занятости от сенсоров.
type Service struct {
	spaceRepo SpaceRepository
	cache     ListCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса парковок
func NewService(spaceRepo SpaceRepository, listCache ListCache, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		cache:     listCache,
		logger:    logger,
	}
}

// List возвращает список парковок по фильтру.
// Результат кешируется, мутации инвентаря сбрасывают кеш целиком.
func (s *Service) List(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error) {
	filter := req.ToDomainFilter()
	key := cache.Key(filter)

	if spaces, ok := s.cache.Get(ctx, key); ok {
		s.logger.Info("List: cache hit, %d spaces", len(spaces))
		return models.FromDomainSpaceList(spaces), nil
	}

	spaces, err := s.spaceRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.cache.Set(ctx, key, spaces)

	s.logger.Info("List: successfully fetched %d spaces", len(spaces))
	return models.FromDomainSpaceList(spaces), nil
}

// ListCities возвращает города с активными парковками для фильтров поиска
func (s *Service) ListCities(ctx context.Context) (*models.AddressValuesResponse, error) {
	cities, err := s.spaceRepo.ListCities(ctx)
	if err != nil {
		s.logger.Error("ListCities: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCities - repository error: %v", ErrInternal, err)
	}
	return &models.AddressValuesResponse{Values: cities}, nil
}

// ListAreas возвращает районы города с активными парковками
func (s *Service) ListAreas(ctx context.Context, city string) (*models.AddressValuesResponse, error) {
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidInput)
	}

	areas, err := s.spaceRepo.ListAreas(ctx, city)
	if err != nil {
		s.logger.Error("ListAreas: repository error for city=%q: %v", city, err)
		return nil, fmt.Errorf("%w: ListAreas - repository error: %v", ErrInternal, err)
	}
	return &models.AddressValuesResponse{Values: areas}, nil
}

// ListStreets возвращает улицы района с активными парковками
func (s *Service) ListStreets(ctx context.Context, city, area string) (*models.AddressValuesResponse, error) {
	if city == "" || area == "" {
		return nil, fmt.Errorf("%w: city and area are required", ErrInvalidInput)
	}

	streets, err := s.spaceRepo.ListStreets(ctx, city, area)
	if err != nil {
		s.logger.Error("ListStreets: repository error for city=%q, area=%q: %v", city, area, err)
		return nil, fmt.Errorf("%w: ListStreets - repository error: %v", ErrInternal, err)
	}
	return &models.AddressValuesResponse{Values: streets}, nil
}

// Get возвращает парковку по ID
func (s *Service) Get(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	space, err := s.fetch(ctx, "Get", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSpace(space), nil
}

// Create создает новую парковку. Только для администраторов.
func (s *Service) Create(ctx context.Context, role string, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Create: creating space name=%q, role=%s", req.Name, role)

	if err := s.requireAdmin("Create", role); err != nil {
		return nil, err
	}

	if err := validateSpaceFields(req.Name, req.TotalSlots, req.PricePerHour); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.spaceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	s.logger.Info("Create: successfully created space id=%d", created.ID)
	return models.FromDomainSpace(created), nil
}

// Update обновляет парковку целиком. Только для администраторов.
func (s *Service) Update(ctx context.Context, role string, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Update: updating space id=%d, role=%s", id, role)

	if err := s.requireAdmin("Update", role); err != nil {
		return nil, err
	}

	if err := validateSpaceFields(req.Name, req.TotalSlots, req.PricePerHour); err != nil {
		s.logger.Warn("Update: validation failed for space id=%d: %v", id, err)
		return nil, err
	}

	space, err := s.fetch(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	space.Name = req.Name
	space.Location = domain.Location{Lat: req.Lat, Lng: req.Lng}
	space.City = req.City
	space.Area = req.Area
	space.Street = req.Street
	space.Unit = req.Unit
	space.TotalSlots = req.TotalSlots
	space.AvailableSlots = req.AvailableSlots
	space.PricePerHour = req.PricePerHour
	space.IsActive = req.IsActive

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	s.logger.Info("Update: successfully updated space id=%d", id)
	return s.Get(ctx, id)
}

// Deactivate мягко удаляет парковку (is_active=false). Только для администраторов.
// Существующие бронирования при этом не отменяются.
func (s *Service) Deactivate(ctx context.Context, role string, id int64) error {
	s.logger.Info("Deactivate: deactivating space id=%d, role=%s", id, role)

	if err := s.requireAdmin("Deactivate", role); err != nil {
		return err
	}

	if err := s.spaceRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Deactivate: space id=%d not found", id)
			return ErrSpaceNotFound
		}
		s.logger.Error("Deactivate: repository error for space id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	s.logger.Info("Deactivate: successfully deactivated space id=%d", id)
	return nil
}

// ReportOccupancy принимает отчет сенсора о свободных местах.
// Значение приводится хранилищем к диапазону [0, totalSlots].
func (s *Service) ReportOccupancy(ctx context.Context, id int64, req *models.ReportOccupancyRequest) (*models.SpaceResponse, error) {
	s.logger.Info("ReportOccupancy: space id=%d, availableSlots=%d", id, req.AvailableSlots)

	if req.AvailableSlots < 0 {
		return nil, fmt.Errorf("%w: availableSlots must be non-negative", ErrInvalidInput)
	}

	if err := s.spaceRepo.UpdateAvailableSlots(ctx, id, req.AvailableSlots); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("ReportOccupancy: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("ReportOccupancy: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ReportOccupancy - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx)

	return s.Get(ctx, id)
}

// Вспомогательные методы

func (s *Service) fetch(ctx context.Context, op string, id int64) (*domain.ParkingSpace, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("%s: space id=%d not found", op, id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("%s: repository error for space id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return space, nil
}

func (s *Service) requireAdmin(op string, role string) error {
	if role != domain.RoleAdmin {
		s.logger.Warn("%s: access denied for role=%s", op, role)
		return ErrAccessDenied
	}
	return nil
}

func validateSpaceFields(name string, totalSlots int, pricePerHour float64) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if totalSlots < 0 {
		return fmt.Errorf("%w: totalSlots must be non-negative", ErrInvalidInput)
	}
	if pricePerHour < 0 {
		return fmt.Errorf("%w: pricePerHour must be non-negative", ErrInvalidInput)
	}
	return nil
}
