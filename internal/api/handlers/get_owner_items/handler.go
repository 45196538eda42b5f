package get_owner_items

import (
	"errors"
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/items"
)

const (
	msgInvalidPage   = "некорректные параметры пагинации: from >= 0, size >= 1"
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
)

type Handler struct {
	service     ItemService
	defaultSize int
	logger      Logger
}

func NewHandler(service ItemService, defaultSize int, logger Logger) *Handler {
	return &Handler{
		service:     service,
		defaultSize: defaultSize,
		logger:      logger,
	}
}

// Handle GET /items?from=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /items - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	page, err := handlers.ParsePage(r, h.defaultSize)
	if err != nil {
		h.logger.Warn("GET /items - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	result, err := h.service.GetByOwner(r.Context(), userID, page)
	if err != nil {
		switch {
		case errors.Is(err, items.ErrUserNotFound):
			h.logger.Warn("GET /items - Owner not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /items - Failed to get items: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /items - Items retrieved successfully: owner_id=%d, count=%d", userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
