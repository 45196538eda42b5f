package add_comment

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
	msgItemNotFound       = "вещь не найдена"
	msgEmptyText          = "текст отзыва не может быть пустым"
	msgNotAllowed         = "оставить отзыв можно только после завершённой аренды"
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

// Handle POST /items/{itemId}/comment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathInt64(r, "itemId")
	if err != nil {
		h.logger.Warn("POST /items/{id}/comment - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /items/{id}/comment - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddCommentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items/{id}/comment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /items/{id}/comment - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgEmptyText)
		return
	}

	comment, err := h.service.AddComment(r.Context(), req.ToServiceRequest(itemID, userID))
	if err != nil {
		switch {
		case errors.Is(err, items.ErrUserNotFound):
			h.logger.Warn("POST /items/{id}/comment - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, items.ErrItemNotFound):
			h.logger.Warn("POST /items/{id}/comment - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, items.ErrInvalidInput):
			h.logger.Warn("POST /items/{id}/comment - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgEmptyText)

		case errors.Is(err, items.ErrCommentNotAllowed):
			h.logger.Warn("POST /items/{id}/comment - Not allowed: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondBadRequest(w, msgNotAllowed)

		default:
			h.logger.Error("POST /items/{id}/comment - Failed to add comment: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items/{id}/comment - Comment added: comment_id=%d, item_id=%d, user_id=%d",
		comment.ID, itemID, userID)
	handlers.RespondJSON(w, http.StatusCreated, comment)
}
