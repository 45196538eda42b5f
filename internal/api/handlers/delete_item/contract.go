package delete_item

import "context"

type ItemService interface {
	Delete(ctx context.Context, itemID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
