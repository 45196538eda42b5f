package requests

import (
	"context"
	"time"

	"github.com/mdemidkin1992/shareit/internal/domain"
)

// RequestRepository интерфейс репозитория запросов на вещи
type RequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	GetByRequester(ctx context.Context, requesterID int64) ([]*domain.ItemRequest, error)
	GetOthers(ctx context.Context, userID int64, page domain.Page) ([]*domain.ItemRequest, error)
}

// ItemRepository поиск вещей, добавленных в ответ на запросы
type ItemRepository interface {
	GetByRequests(ctx context.Context, requestIDs []int64) (map[int64][]*domain.Item, error)
}

// UserRepository интерфейс поиска пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
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
