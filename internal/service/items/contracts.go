package items

import (
	"context"
	"time"

	"github.com/mdemidkin1992/shareit/internal/domain"
)

// ItemRepository интерфейс репозитория вещей
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]*domain.Item, error)
	Search(ctx context.Context, text string, page domain.Page) ([]*domain.Item, error)
	Update(ctx context.Context, id int64, upd domain.ItemUpdate) (*domain.Item, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository нужные сервису вещей запросы к бронированиям
type BookingRepository interface {
	GetLastAndNext(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*domain.BookingShort, map[int64]*domain.BookingShort, error)
	HasFinishedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

// CommentRepository интерфейс репозитория отзывов
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetByItems(ctx context.Context, itemIDs []int64) (map[int64][]*domain.Comment, error)
}

// RequestRepository поиск запроса, в ответ на который добавляется вещь
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
}

// UserRepository интерфейс поиска пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
