package get_all_requests

import (
	"context"

	"github.com/mdemidkin1992/shareit/internal/domain"
	"github.com/mdemidkin1992/shareit/internal/service/requests/models"
)

type RequestService interface {
	ListOthers(ctx context.Context, userID int64, page domain.Page) ([]models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
