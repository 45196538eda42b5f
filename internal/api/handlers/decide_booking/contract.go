package decide_booking

import (
	"context"

	"github.com/mdemidkin1992/shareit/internal/service/bookings/models"
)

type BookingService interface {
	Decide(ctx context.Context, req *models.DecideRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
