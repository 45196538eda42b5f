package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/bookings"
	"github.com/mdemidkin1992/shareit/internal/service/bookings/models"
)

const (
	msgInvalidPage   = "некорректные параметры пагинации: from >= 0, size >= 1"
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
)

type Handler struct {
	service     BookingService
	defaultSize int
	logger      Logger
}

func NewHandler(service BookingService, defaultSize int, logger Logger) *Handler {
	return &Handler{
		service:     service,
		defaultSize: defaultSize,
		logger:      logger,
	}
}

// Handle GET /bookings?state=&from=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	page, err := handlers.ParsePage(r, h.defaultSize)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	state := r.URL.Query().Get("state")

	result, err := h.service.ListByBooker(r.Context(), &models.ListBookingsRequest{
		UserID: userID,
		State:  state,
		Page:   page,
	})
	if err != nil {
		var unknown *bookings.UnknownStateError
		switch {
		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("GET /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.As(err, &unknown):
			h.logger.Warn("GET /bookings - Unknown state: user_id=%d, state=%q", userID, unknown.State)
			handlers.RespondBadRequest(w, unknown.Error())

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Booker bookings retrieved successfully: user_id=%d, count=%d", userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
