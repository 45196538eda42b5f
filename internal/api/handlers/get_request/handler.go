package get_request

import (
	"errors"
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/requests"
)

const (
	msgInvalidRequestID = "некорректный ID запроса"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgUserNotFound     = "пользователь не найден"
	msgNotFound         = "запрос на вещь не найден"
)

type Handler struct {
	service RequestService
	logger  Logger
}

func NewHandler(service RequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := handlers.PathInt64(r, "requestId")
	if err != nil {
		h.logger.Warn("GET /requests/{id} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /requests/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetByID(r.Context(), requestID, userID)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrUserNotFound):
			h.logger.Warn("GET /requests/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, requests.ErrRequestNotFound):
			h.logger.Warn("GET /requests/{id} - Item request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /requests/{id} - Failed to get item request: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /requests/{id} - Item request retrieved: request_id=%d, items=%d", requestID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
