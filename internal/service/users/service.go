package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdemidkin1992/shareit/internal/domain"
	userRepo "github.com/mdemidkin1992/shareit/internal/infra/storage/user"
	"github.com/mdemidkin1992/shareit/internal/service/users/models"
)

// Service сервис пользователей
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create создает пользователя
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: creating user email=%s", req.Email)

	user, err := s.userRepo.Create(ctx, &domain.User{Name: req.Name, Email: req.Email})
	if err != nil {
		return nil, s.mapError("Create", 0, err)
	}

	s.logger.Info("Create: created user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", id, err)
	}
	return models.FromDomainUser(user), nil
}

// GetAll возвращает всех пользователей
func (s *Service) GetAll(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, s.mapError("GetAll", 0, err)
	}
	return models.FromDomainUserList(users), nil
}

// Update частично обновляет пользователя
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating user id=%d", id)

	user, err := s.userRepo.Update(ctx, id, domain.UserUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}
	return models.FromDomainUser(user), nil
}

// Delete удаляет пользователя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting user id=%d", id)

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", id, err)
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, userRepo.ErrUserNotFound):
		s.logger.Warn("%s: user id=%d not found", op, id)
		return ErrUserNotFound
	case errors.Is(err, userRepo.ErrEmailAlreadyExists):
		s.logger.Warn("%s: email already exists", op)
		return ErrEmailAlreadyExists
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
