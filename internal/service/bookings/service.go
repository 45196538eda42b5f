package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdemidkin1992/shareit/internal/domain"
	bookingRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/booking"
	userRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/user"
	"github.com/mdemidkin1992/shareit/internal/service/bookings/models"
	"github.com/mdemidkin1992/shareit/pkg/ptr"
)

const (
	outcomeApproved = "approved"
	outcomeRejected = "rejected"
	outcomeDenied   = "denied"
	outcomeRepeated = "repeated"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Decide одобряет или отклоняет бронирование.
// Решение принимает только владелец вещи; повторное одобрение или повторное отклонение
// возвращает ErrUnsupportedState, смена APPROVED <-> REJECTED разрешена
func (s *Service) Decide(ctx context.Context, req *models.DecideRequest) (*models.BookingResponse, error) {
	s.logger.Info("Decide: booking id=%d approved=%t by user=%d", req.BookingID, req.Approved, req.UserID)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.ensureUser(txCtx, "Decide", req.UserID); err != nil {
			return err
		}

		booking, err := s.getBooking(txCtx, "Decide", req.BookingID)
		if err != nil {
			return err
		}

		if !booking.IsOwnedBy(req.UserID) {
			s.logger.Warn("Decide: user=%d is not owner of item id=%d", req.UserID, booking.Item.ID)
			s.count(outcomeDenied)
			return ErrAccessDenied
		}

		if !booking.CanDecide(req.Approved) {
			s.logger.Warn("Decide: booking id=%d already has status=%s", req.BookingID, booking.Status)
			s.count(outcomeRepeated)
			return ErrUnsupportedState
		}

		target := domain.DecisionStatus(req.Approved)
		if err := s.bookingRepo.UpdateStatus(txCtx, req.BookingID, target); err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrStatusUnchanged):
				// параллельный запрос успел принять то же решение
				s.logger.Warn("Decide: booking id=%d changed concurrently", req.BookingID)
				s.count(outcomeRepeated)
				return ErrUnsupportedState
			default:
				s.logger.Error("Decide: repository error for booking id=%d: %v", req.BookingID, err)
				return fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
			}
		}

		booking.Status = target
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.Approved {
		s.count(outcomeApproved)
	} else {
		s.count(outcomeRejected)
	}

	s.logger.Info("Decide: booking id=%d is now %s", result.ID, result.Status)
	return models.FromDomainBooking(result), nil
}

// GetByID получает бронирование по ID.
// Доступно только автору брони и владельцу вещи
func (s *Service) GetByID(ctx context.Context, bookingID, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", bookingID, userID)

	if err := s.ensureUser(ctx, "GetByID", userID); err != nil {
		return nil, err
	}

	booking, err := s.getBooking(ctx, "GetByID", bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.IsVisibleTo(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// ListByBooker возвращает бронирования пользователя по фильтру состояния
func (s *Service) ListByBooker(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	s.logger.Info("ListByBooker: user=%d state=%s from=%d size=%d", req.UserID, req.State, req.Page.From, req.Page.Size)
	return s.list(ctx, "ListByBooker", req, func(f *domain.BookingsFilter) {
		f.BookerID = ptr.Ptr(req.UserID)
	})
}

// ListByOwner возвращает бронирования всех вещей владельца по фильтру состояния
func (s *Service) ListByOwner(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	s.logger.Info("ListByOwner: user=%d state=%s from=%d size=%d", req.UserID, req.State, req.Page.From, req.Page.Size)
	return s.list(ctx, "ListByOwner", req, func(f *domain.BookingsFilter) {
		f.OwnerID = ptr.Ptr(req.UserID)
	})
}

func (s *Service) list(
	ctx context.Context,
	op string,
	req *models.ListBookingsRequest,
	scope func(f *domain.BookingsFilter),
) ([]models.BookingResponse, error) {
	if err := s.ensureUser(ctx, op, req.UserID); err != nil {
		return nil, err
	}

	state, err := domain.ParseBookingState(req.State)
	if err != nil {
		s.logger.Warn("%s: unknown state=%q", op, req.State)
		return nil, &UnknownStateError{State: req.State}
	}

	filter := domain.BookingsFilter{
		State: state,
		Now:   s.timeProvider.Now(),
		Page:  req.Page,
	}
	scope(&filter)

	var bookings []*domain.Booking
	err = s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		bookings, err = s.bookingRepo.List(txCtx, filter)
		return err
	})
	if err != nil {
		s.logger.Error("%s: repository error for user=%d: %v", op, req.UserID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.logger.Info("%s: fetched %d bookings for user=%d", op, len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Вспомогательные методы

func (s *Service) ensureUser(ctx context.Context, op string, userID int64) error {
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

func (s *Service) getBooking(ctx context.Context, op string, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) count(outcome string) {
	if s.metrics != nil {
		s.metrics.IncBookingDecision(outcome)
	}
}
