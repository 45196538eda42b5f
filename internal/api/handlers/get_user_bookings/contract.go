package get_user_bookings

import (
	"context"

	"github.com/mdemidkin1992/shareit/internal/service/bookings/models"
)

type BookingService interface {
	ListByBooker(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
