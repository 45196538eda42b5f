package get_users

import (
	"context"

	"github.com/mdemidkin1992/shareit/internal/service/users/models"
)

type UserService interface {
	GetAll(ctx context.Context) ([]models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
