package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartpark/SP-BookingService/internal/domain"
	spaceRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/space"
	"github.com/smartpark/SP-BookingService/internal/service/reviews/models"
)

// Service сервис отзывов о парковках
type Service struct {
	reviewRepo ReviewRepository
	spaceRepo  SpaceRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, spaceRepo SpaceRepository, logger Logger) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		spaceRepo:  spaceRepo,
		logger:     logger,
	}
}

// Create создает отзыв о парковке от имени пользователя
func (s *Service) Create(ctx context.Context, userID, spaceID int64, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: creating review for space=%d by user=%d, rating=%d", spaceID, userID, req.Rating)

	if !domain.IsValidRating(req.Rating) {
		s.logger.Warn("Create: invalid rating=%d for space=%d", req.Rating, spaceID)
		return nil, ErrInvalidRating
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment is too long", ErrInvalidInput)
	}

	// Парковка должна существовать
	if _, err := s.spaceRepo.GetByID(ctx, spaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Create: space id=%d not found", spaceID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Create: failed to get space id=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: Create - failed to get space: %v", ErrInternal, err)
	}

	created, err := s.reviewRepo.Create(ctx, &domain.Review{
		UserID:  userID,
		SpaceID: spaceID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created review id=%d", created.ID)
	return models.FromDomainReview(created), nil
}

// ListBySpace возвращает отзывы о парковке, новые первыми
func (s *Service) ListBySpace(ctx context.Context, spaceID int64) (*models.ReviewListResponse, error) {
	if _, err := s.spaceRepo.GetByID(ctx, spaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("ListBySpace: space id=%d not found", spaceID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("ListBySpace: failed to get space id=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: ListBySpace - failed to get space: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListBySpace(ctx, spaceID)
	if err != nil {
		s.logger.Error("ListBySpace: repository error for space=%d: %v", spaceID, err)
		return nil, fmt.Errorf("%w: ListBySpace - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews), nil
}
