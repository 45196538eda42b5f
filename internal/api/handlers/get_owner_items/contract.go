package get_owner_items

import (
	"context"

	"github.com/mdemidkin1992/shareit/internal/domain"
	"github.com/mdemidkin1992/shareit/internal/service/items/models"
)

type ItemService interface {
	GetByOwner(ctx context.Context, ownerID int64, page domain.Page) ([]models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
