package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mdemidkin1992/shareit/internal/domain"
	itemRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/item"
	requestRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/request"
	userRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/user"
	"github.com/mdemidkin1992/shareit/internal/service/items/models"
)

// Service сервис вещей и отзывов
type Service struct {
	itemRepo     ItemRepository
	bookingRepo  BookingRepository
	commentRepo  CommentRepository
	requestRepo  RequestRepository
	userRepo     UserRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса вещей
func NewService(
	itemRepo ItemRepository,
	bookingRepo BookingRepository,
	commentRepo CommentRepository,
	requestRepo RequestRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		itemRepo:     itemRepo,
		bookingRepo:  bookingRepo,
		commentRepo:  commentRepo,
		requestRepo:  requestRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create создает вещь владельца. Если задан RequestID, вещь становится ответом на этот запрос
func (s *Service) Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Create: creating item name=%q for owner=%d", req.Name, req.OwnerID)

	if _, err := s.getUser(ctx, "Create", req.OwnerID); err != nil {
		return nil, err
	}

	if req.RequestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *req.RequestID); err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				s.logger.Warn("Create: item request id=%d not found", *req.RequestID)
				return nil, ErrRequestNotFound
			}
			s.logger.Error("Create: failed to get item request id=%d: %v", *req.RequestID, err)
			return nil, fmt.Errorf("%w: Create - request repository error: %v", ErrInternal, err)
		}
	}

	item, err := s.itemRepo.Create(ctx, &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     req.OwnerID,
		RequestID:   req.RequestID,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created item id=%d", item.ID)
	return models.FromDomainItem(item), nil
}

// GetByID возвращает вещь с отзывами. Последнюю и следующую брони видит только владелец
func (s *Service) GetByID(ctx context.Context, itemID, userID int64) (*models.ItemResponse, error) {
	s.logger.Info("GetByID: fetching item id=%d for user=%d", itemID, userID)

	item, err := s.getItem(ctx, "GetByID", itemID)
	if err != nil {
		return nil, err
	}

	details, err := s.enrich(ctx, "GetByID", []*domain.Item{item}, item.OwnerID == userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainItemDetails(details[0]), nil
}

// GetByOwner возвращает вещи владельца с ближайшими бронями и отзывами
func (s *Service) GetByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]models.ItemResponse, error) {
	s.logger.Info("GetByOwner: owner=%d from=%d size=%d", ownerID, page.From, page.Size)

	if _, err := s.getUser(ctx, "GetByOwner", ownerID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.GetByOwner(ctx, ownerID, page)
	if err != nil {
		s.logger.Error("GetByOwner: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByOwner - repository error: %v", ErrInternal, err)
	}

	details, err := s.enrich(ctx, "GetByOwner", items, true)
	if err != nil {
		return nil, err
	}

	return models.FromDomainItemDetailsList(details), nil
}

// Search ищет доступные вещи по подстроке. Пустой текст даёт пустой результат
func (s *Service) Search(ctx context.Context, text string, page domain.Page) ([]models.ItemResponse, error) {
	if strings.TrimSpace(text) == "" {
		return []models.ItemResponse{}, nil
	}

	items, err := s.itemRepo.Search(ctx, text, page)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	details, err := s.enrich(ctx, "Search", items, false)
	if err != nil {
		return nil, err
	}

	return models.FromDomainItemDetailsList(details), nil
}

// Update частично обновляет вещь. Менять вещь может только владелец
func (s *Service) Update(ctx context.Context, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("Update: updating item id=%d by user=%d", req.ItemID, req.UserID)

	var updated *domain.Item
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.getUser(txCtx, "Update", req.UserID); err != nil {
			return err
		}

		item, err := s.getItem(txCtx, "Update", req.ItemID)
		if err != nil {
			return err
		}
		if item.OwnerID != req.UserID {
			s.logger.Warn("Update: user=%d is not owner of item id=%d", req.UserID, req.ItemID)
			return ErrAccessDenied
		}

		updated, err = s.itemRepo.Update(txCtx, req.ItemID, domain.ItemUpdate{
			Name:        req.Name,
			Description: req.Description,
			Available:   req.Available,
		})
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				return ErrItemNotFound
			}
			s.logger.Error("Update: repository error for item id=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	details, err := s.enrich(ctx, "Update", []*domain.Item{updated}, false)
	if err != nil {
		return nil, err
	}
	return models.FromDomainItemDetails(details[0]), nil
}

// Delete удаляет вещь. Удалить может только владелец
func (s *Service) Delete(ctx context.Context, itemID, userID int64) error {
	s.logger.Info("Delete: deleting item id=%d by user=%d", itemID, userID)

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		item, err := s.getItem(txCtx, "Delete", itemID)
		if err != nil {
			return err
		}
		if item.OwnerID != userID {
			s.logger.Warn("Delete: user=%d is not owner of item id=%d", userID, itemID)
			return ErrAccessDenied
		}

		if err := s.itemRepo.Delete(txCtx, itemID); err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				return ErrItemNotFound
			}
			s.logger.Error("Delete: repository error for item id=%d: %v", itemID, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})
}

// AddComment добавляет отзыв. Автор должен иметь одобренную бронь вещи, завершившуюся до текущего момента
func (s *Service) AddComment(ctx context.Context, req *models.AddCommentRequest) (*models.CommentResponse, error) {
	s.logger.Info("AddComment: item id=%d author=%d", req.ItemID, req.AuthorID)

	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: empty comment text", ErrInvalidInput)
	}

	var created *domain.Comment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		author, err := s.getUser(txCtx, "AddComment", req.AuthorID)
		if err != nil {
			return err
		}
		if _, err := s.getItem(txCtx, "AddComment", req.ItemID); err != nil {
			return err
		}

		now := s.timeProvider.Now()
		ok, err := s.bookingRepo.HasFinishedApproved(txCtx, req.AuthorID, req.ItemID, now)
		if err != nil {
			s.logger.Error("AddComment: booking repository error: %v", err)
			return fmt.Errorf("%w: AddComment - booking repository error: %v", ErrInternal, err)
		}
		if !ok {
			s.logger.Warn("AddComment: user=%d has no finished booking of item id=%d", req.AuthorID, req.ItemID)
			return ErrCommentNotAllowed
		}

		created, err = s.commentRepo.Create(txCtx, &domain.Comment{
			Text:     req.Text,
			ItemID:   req.ItemID,
			AuthorID: req.AuthorID,
			Created:  now,
		})
		if err != nil {
			s.logger.Error("AddComment: comment repository error: %v", err)
			return fmt.Errorf("%w: AddComment - comment repository error: %v", ErrInternal, err)
		}
		created.AuthorName = author.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AddComment: created comment id=%d", created.ID)
	return models.FromDomainComment(created), nil
}

// Вспомогательные методы

// enrich добавляет к вещам отзывы и, если withBookings, ближайшие одобренные брони
func (s *Service) enrich(ctx context.Context, op string, items []*domain.Item, withBookings bool) ([]*domain.ItemDetails, error) {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	comments, err := s.commentRepo.GetByItems(ctx, ids)
	if err != nil {
		s.logger.Error("%s: comment repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - comment repository error: %v", ErrInternal, op, err)
	}

	var last, next map[int64]*domain.BookingShort
	if withBookings {
		last, next, err = s.bookingRepo.GetLastAndNext(ctx, ids, s.timeProvider.Now())
		if err != nil {
			s.logger.Error("%s: booking repository error: %v", op, err)
			return nil, fmt.Errorf("%w: %s - booking repository error: %v", ErrInternal, op, err)
		}
	}

	details := make([]*domain.ItemDetails, 0, len(items))
	for _, it := range items {
		details = append(details, &domain.ItemDetails{
			Item:        *it,
			LastBooking: last[it.ID],
			NextBooking: next[it.ID],
			Comments:    comments[it.ID],
		})
	}
	return details, nil
}

func (s *Service) getUser(ctx context.Context, op string, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: failed to get user id=%d: %v", op, userID, err)
		return nil, fmt.Errorf("%w: %s - user repository error: %v", ErrInternal, op, err)
	}
	return user, nil
}

func (s *Service) getItem(ctx context.Context, op string, itemID int64) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("%s: item id=%d not found", op, itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("%s: failed to get item id=%d: %v", op, itemID, err)
		return nil, fmt.Errorf("%w: %s - item repository error: %v", ErrInternal, op, err)
	}
	return item, nil
}
