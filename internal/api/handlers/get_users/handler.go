package get_users

import (
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
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

// Handle GET /users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to get users: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users - Users retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
