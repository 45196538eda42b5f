package update_item

import (
	"errors"
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/items"
)

const (
	msgInvalidItemID      = "некорректный ID вещи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgNotFound           = "вещь не найдена"
	msgForbidden          = "изменять вещь может только владелец"
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

// Handle PATCH /items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathInt64(r, "itemId")
	if err != nil {
		h.logger.Warn("PATCH /items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /items/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /items/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PATCH /items/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	item, err := h.service.Update(r.Context(), req.ToServiceRequest(itemID, userID))
	if err != nil {
		switch {
		case errors.Is(err, items.ErrUserNotFound):
			h.logger.Warn("PATCH /items/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, items.ErrItemNotFound):
			h.logger.Warn("PATCH /items/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, items.ErrAccessDenied):
			h.logger.Warn("PATCH /items/{id} - Access denied: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /items/{id} - Failed to update item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /items/{id} - Item updated successfully: item_id=%d, user_id=%d", itemID, userID)
	handlers.RespondJSON(w, http.StatusOK, item)
}
