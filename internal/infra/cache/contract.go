package cache

import (
	"context"

	"github.com/mdemidkin1992/shareit/internal/domain"
)

// UserRepository источник пользователей, поверх которого работает кэш
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// Metrics счётчик попаданий в кэш
type Metrics interface {
	IncCache(cache, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
