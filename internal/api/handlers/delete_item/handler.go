package delete_item

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
	msgForbidden     = "удалить вещь может только владелец"
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

// Handle DELETE /items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathInt64(r, "itemId")
	if err != nil {
		h.logger.Warn("DELETE /items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /items/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), itemID, userID); err != nil {
		switch {
		case errors.Is(err, items.ErrItemNotFound):
			h.logger.Warn("DELETE /items/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, items.ErrAccessDenied):
			h.logger.Warn("DELETE /items/{id} - Access denied: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /items/{id} - Failed to delete item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /items/{id} - Item deleted successfully: item_id=%d, user_id=%d", itemID, userID)
	handlers.RespondNoContent(w)
}
