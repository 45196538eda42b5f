package get_item

import (
	"errors"
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/items"
)

const (
	msgInvalidItemID = "некорректный ID вещи"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "вещь не найдена"
)

type Handler struct {
	service ItemService
	logger  Logger
}

func NewHandler(service ItemService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathInt64(r, "itemId")
	if err != nil {
		h.logger.Warn("GET /items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /items/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Ближайшие брони сервис заполняет только для владельца
	item, err := h.service.GetByID(r.Context(), itemID, userID)
	if err != nil {
		switch {
		case errors.Is(err, items.ErrItemNotFound):
			h.logger.Warn("GET /items/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /items/{id} - Failed to get item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, item)
}
