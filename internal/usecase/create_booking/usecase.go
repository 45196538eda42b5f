package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdemidkin1992/shareit/internal/domain"
	itemRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/item"
	userRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/user"
	"github.com/mdemidkin1992/shareit/internal/service/bookings/models"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверки и запись выполняются в одной SERIALIZABLE транзакции, новая бронь всегда в статусе WAITING.
// Пересечение с другими бронями не проверяется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	uc.logger.Info("CreateBooking: booker=%d, item=%d, start=%s, end=%s",
		req.BookerID, req.ItemID, req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Интервал должен начинаться в будущем
	if err := validateRange(req.Start, req.End, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: range validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Проверки и сохранение в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Автор брони
		booker, err := uc.userRepo.GetByID(txCtx, req.BookerID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateBooking: user id=%d not found", req.BookerID)
				return ErrUserNotFound
			}
			uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.BookerID, err)
			return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}

		// 3.2. Вещь
		item, err := uc.itemRepo.GetByID(txCtx, req.ItemID)
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				uc.logger.Warn("CreateBooking: item id=%d not found", req.ItemID)
				return ErrItemNotFound
			}
			uc.logger.Error("CreateBooking: failed to get item id=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
		}

		// 3.3. Вещь доступна
		if !item.Available {
			uc.logger.Warn("CreateBooking: item id=%d is not available", req.ItemID)
			return ErrItemNotAvailable
		}

		// 3.4. Владелец не бронирует свою вещь
		if item.OwnerID == req.BookerID {
			uc.logger.Warn("CreateBooking: user id=%d tried to book own item id=%d", req.BookerID, req.ItemID)
			return ErrSelfBooking
		}

		// 3.5. Сохраняем бронь
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			Start:  req.Start,
			End:    req.End,
			Status: domain.StatusWaiting,
			Item:   *item,
			Booker: *booker,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return models.FromDomainBooking(result), nil
}
