package create_request

import (
	"errors"
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
	"github.com/mdemidkin1992/shareit/internal/api/middleware"
	"github.com/mdemidkin1992/shareit/internal/service/requests"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgEmptyDescription   = "описание запроса не может быть пустым"
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

// Handle POST /requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /requests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /requests - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrUserNotFound):
			h.logger.Warn("POST /requests - Requester not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, requests.ErrInvalidInput):
			h.logger.Warn("POST /requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgEmptyDescription)

		default:
			h.logger.Error("POST /requests - Failed to create item request: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests - Item request created: request_id=%d, requester_id=%d", created.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
