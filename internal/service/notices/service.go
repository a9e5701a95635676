package notices

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartpark/SP-BookingService/internal/domain"
	noticeRepo "github.com/smartpark/SP-BookingService/internal/infra/storage/notice"
	"github.com/smartpark/SP-BookingService/internal/service/notices/models"
)

// Service сервис объявлений администрации.
// Чтение публичное, создание и удаление - только для администраторов.
type Service struct {
	noticeRepo NoticeRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(noticeRepo NoticeRepository, logger Logger) *Service {
	return &Service{
		noticeRepo: noticeRepo,
		logger:     logger,
	}
}

// List возвращает все объявления, новые первыми
func (s *Service) List(ctx context.Context) (*models.NoticeListResponse, error) {
	notices, err := s.noticeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNoticeList(notices), nil
}

// Create создает объявление от имени администратора
func (s *Service) Create(ctx context.Context, userID int64, role string, req *models.CreateNoticeRequest) (*models.NoticeResponse, error) {
	s.logger.Info("Create: creating notice by user=%d, role=%s", userID, role)

	if role != domain.RoleAdmin {
		s.logger.Warn("Create: access denied for user=%d, role=%s", userID, role)
		return nil, ErrAccessDenied
	}

	if err := validateNotice(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.noticeRepo.Create(ctx, &domain.Notice{
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: userID,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created notice id=%d", created.ID)
	return models.FromDomainNotice(created), nil
}

// Delete удаляет объявление. Только для администраторов.
func (s *Service) Delete(ctx context.Context, id int64, role string) error {
	s.logger.Info("Delete: deleting notice id=%d, role=%s", id, role)

	if role != domain.RoleAdmin {
		s.logger.Warn("Delete: access denied for role=%s", role)
		return ErrAccessDenied
	}

	if err := s.noticeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, noticeRepo.ErrNoticeNotFound) {
			s.logger.Warn("Delete: notice id=%d not found", id)
			return ErrNoticeNotFound
		}
		s.logger.Error("Delete: repository error for notice id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted notice id=%d", id)
	return nil
}

func validateNotice(req *models.CreateNoticeRequest) error {
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(req.Title) > domain.MaxNoticeTitle {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}
	if req.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if len(req.Content) > domain.MaxNoticeContent {
		return fmt.Errorf("%w: content is too long", ErrInvalidInput)
	}
	return nil
}
