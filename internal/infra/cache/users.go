package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mdemidkin1992/shareit/internal/domain"
)

const (
	cacheName = "users"

	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

type cachedUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Users read-through кэш пользователей в Redis.
// Ошибки Redis не прерывают запрос: чтение уходит в репозиторий
type Users struct {
	repo    UserRepository
	client  *redis.Client
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// NewUsers создает кэш пользователей
func NewUsers(repo UserRepository, client *redis.Client, ttl time.Duration, metrics Metrics, logger Logger) *Users {
	return &Users{
		repo:    repo,
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// NewRedisClient создает клиент Redis
func NewRedisClient(addr, password string, db, poolSize int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})
}

func key(id int64) string {
	return fmt.Sprintf("shareit:user:%d", id)
}

// Create сохраняет пользователя, кэш заполняется при первом чтении
func (c *Users) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return c.repo.Create(ctx, user)
}

// GetAll всегда читает из репозитория
func (c *Users) GetAll(ctx context.Context) ([]*domain.User, error) {
	return c.repo.GetAll(ctx)
}

// GetByID читает пользователя из кэша, при промахе из репозитория
func (c *Users) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	val, err := c.client.Get(ctx, key(id)).Result()
	switch {
	case err == nil:
		var cu cachedUser
		if jsonErr := json.Unmarshal([]byte(val), &cu); jsonErr == nil {
			c.count(resultHit)
			return &domain.User{ID: cu.ID, Name: cu.Name, Email: cu.Email}, nil
		}
		c.count(resultError)
	case errors.Is(err, redis.Nil):
		c.count(resultMiss)
	default:
		c.count(resultError)
		c.logger.Warn("users cache: get id=%d: %v", id, err)
	}

	user, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, user)
	return user, nil
}

// Update обновляет пользователя и сбрасывает запись в кэше
func (c *Users) Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	user, err := c.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, id)
	return user, nil
}

// Delete удаляет пользователя и запись в кэше
func (c *Users) Delete(ctx context.Context, id int64) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *Users) store(ctx context.Context, user *domain.User) {
	data, err := json.Marshal(cachedUser{ID: user.ID, Name: user.Name, Email: user.Email})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(user.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("users cache: set id=%d: %v", user.ID, err)
	}
}

func (c *Users) invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		c.logger.Warn("users cache: del id=%d: %v", id, err)
	}
}

func (c *Users) count(result string) {
	if c.metrics != nil {
		c.metrics.IncCache(cacheName, result)
	}
}
