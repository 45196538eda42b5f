package get_all_requests

import (
	"errors"
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/requests"
)

const (
	msgInvalidPage   = "некорректные параметры пагинации: from >= 0, size >= 1"
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
)

type Handler struct {
	service     RequestService
	defaultSize int
	logger      Logger
}

func NewHandler(service RequestService, defaultSize int, logger Logger) *Handler {
	return &Handler{
		service:     service,
		defaultSize: defaultSize,
		logger:      logger,
	}
}

// Handle GET /requests/all?from=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /requests/all - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	page, err := handlers.ParsePage(r, h.defaultSize)
	if err != nil {
		h.logger.Warn("GET /requests/all - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	result, err := h.service.ListOthers(r.Context(), userID, page)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrUserNotFound):
			h.logger.Warn("GET /requests/all - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /requests/all - Failed to list item requests: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /requests/all - Item requests retrieved: user_id=%d, from=%d, size=%d, count=%d",
		userID, page.From, page.Size, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
