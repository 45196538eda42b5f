package get_booking

import (
	"errors"
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/bookings"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidBookingID = "некорректный ID бронирования"
	msgUserNotFound     = "пользователь не найден"
	msgBookingNotFound  = "бронирование не найдено"
	msgNotParticipant   = "бронирование доступно только автору брони и владельцу вещи"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Bad booking ID: requester=%d, error=%v", requesterID, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, requesterID)
	switch {
	case err == nil:
		h.logger.Info("GET /bookings/{id} - booking_id=%d, status=%s, requester=%d",
			booking.ID, booking.Status, requesterID)
		handlers.RespondJSON(w, http.StatusOK, booking)

	case errors.Is(err, bookings.ErrUserNotFound):
		h.logger.Warn("GET /bookings/{id} - Unknown requester=%d", requesterID)
		handlers.RespondNotFound(w, msgUserNotFound)

	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("GET /bookings/{id} - No booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("GET /bookings/{id} - requester=%d is neither booker nor owner of booking_id=%d",
			requesterID, bookingID)
		handlers.RespondForbidden(w, msgNotParticipant)

	default:
		h.logger.Error("GET /bookings/{id} - booking_id=%d: %v", bookingID, err)
		handlers.RespondInternalError(w)
	}
}
