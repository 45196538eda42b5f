package create_user

import (
	"errors"
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
	"github.com/mdemidkin1992/shareit/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailExists        = "пользователь с таким email уже существует"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /users - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	user, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailAlreadyExists):
			h.logger.Warn("POST /users - Email already exists: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailExists)

		default:
			h.logger.Error("POST /users - Failed to create user: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created successfully: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
