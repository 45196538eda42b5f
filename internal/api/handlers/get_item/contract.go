package get_item

import (
	"context"

	"github.com/mdemidkin1992/shareit/internal/service/items/models"
)

type ItemService interface {
	GetByID(ctx context.Context, itemID, userID int64) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
