package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mdemidkin1992/shareit/internal/domain"
	requestRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/request"
	userRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/user"
	"github.com/mdemidkin1992/shareit/internal/service/requests/models"
)

// Service сервис запросов на вещи
type Service struct {
	requestRepo  RequestRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса запросов
func NewService(
	requestRepo RequestRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:  requestRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create сохраняет запрос пользователя с текущим временем создания
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.RequestResponse, error) {
	s.logger.Info("Create: creating item request for user=%d", req.RequesterID)

	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: empty description", ErrInvalidInput)
	}
	if err := s.checkUser(ctx, "Create", req.RequesterID); err != nil {
		return nil, err
	}

	created, err := s.requestRepo.Create(ctx, &domain.ItemRequest{
		Description: req.Description,
		RequesterID: req.RequesterID,
		Created:     s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created item request id=%d", created.ID)
	return models.FromDomainRequest(&domain.ItemRequestDetails{ItemRequest: *created}), nil
}

// ListOwn возвращает все запросы пользователя с ответами, новые первыми
func (s *Service) ListOwn(ctx context.Context, userID int64) ([]models.RequestResponse, error) {
	if err := s.checkUser(ctx, "ListOwn", userID); err != nil {
		return nil, err
	}

	list, err := s.requestRepo.GetByRequester(ctx, userID)
	if err != nil {
		s.logger.Error("ListOwn: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOwn - repository error: %v", ErrInternal, err)
	}

	details, err := s.withItems(ctx, "ListOwn", list)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRequestList(details), nil
}

// ListOthers возвращает страницу чужих запросов с ответами, новые первыми
func (s *Service) ListOthers(ctx context.Context, userID int64, page domain.Page) ([]models.RequestResponse, error) {
	if err := s.checkUser(ctx, "ListOthers", userID); err != nil {
		return nil, err
	}

	list, err := s.requestRepo.GetOthers(ctx, userID, page)
	if err != nil {
		s.logger.Error("ListOthers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOthers - repository error: %v", ErrInternal, err)
	}

	details, err := s.withItems(ctx, "ListOthers", list)
	if err != nil {
		return nil, err
	}
	return models.FromDomainRequestList(details), nil
}

// GetByID возвращает запрос с ответами. Смотреть запрос может любой существующий пользователь
func (s *Service) GetByID(ctx context.Context, requestID, userID int64) (*models.RequestResponse, error) {
	if err := s.checkUser(ctx, "GetByID", userID); err != nil {
		return nil, err
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: item request id=%d not found", requestID)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for item request id=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	details, err := s.withItems(ctx, "GetByID", []*domain.ItemRequest{req})
	if err != nil {
		return nil, err
	}
	return models.FromDomainRequest(details[0]), nil
}

func (s *Service) withItems(ctx context.Context, op string, list []*domain.ItemRequest) ([]*domain.ItemRequestDetails, error) {
	ids := make([]int64, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}

	items, err := s.itemRepo.GetByRequests(ctx, ids)
	if err != nil {
		s.logger.Error("%s: item repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - item repository error: %v", ErrInternal, op, err)
	}

	details := make([]*domain.ItemRequestDetails, 0, len(list))
	for _, r := range list {
		details = append(details, &domain.ItemRequestDetails{ItemRequest: *r, Items: items[r.ID]})
	}
	return details, nil
}

func (s *Service) checkUser(ctx context.Context, op string, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, userID)
			return ErrUserNotFound
		}
		s.logger.Error("%s: failed to get user id=%d: %v", op, userID, err)
		return fmt.Errorf("%w: %s - user repository error: %v", ErrInternal, op, err)
	}
	return nil
}
