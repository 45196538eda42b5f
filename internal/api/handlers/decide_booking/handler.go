package decide_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/bookings"
	"github.com/mdemidkin1992/shareit/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidApproved  = "параметр approved должен быть true или false"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgUserNotFound     = "пользователь не найден"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "решение может принять только владелец вещи"
	msgAlreadyDecided   = "Booking status has already been changed."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /bookings/{bookingId}?approved=true|false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid approved param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApproved)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	booking, err := h.service.Decide(r.Context(), &models.DecideRequest{
		BookingID: bookingID,
		UserID:    userID,
		Approved:  approved,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("PATCH /bookings/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrUnsupportedState):
			h.logger.Warn("PATCH /bookings/{id} - Status already set: booking_id=%d, approved=%t", bookingID, approved)
			handlers.RespondBadRequest(w, msgAlreadyDecided)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to decide booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking decided: booking_id=%d, status=%s, user_id=%d",
		bookingID, booking.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
