package search_items

import (
	"net/http"

	"github.com/mdemidkin1992/shareit/internal/api/handlers"
)

const (
	msgInvalidPage = "некорректные параметры пагинации: from >= 0, size >= 1"
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

// Handle GET /items/search?text=&from=&size=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page, err := handlers.ParsePage(r, h.defaultSize)
	if err != nil {
		h.logger.Warn("GET /items/search - Invalid page: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	text := r.URL.Query().Get("text")

	result, err := h.service.Search(r.Context(), text, page)
	if err != nil {
		h.logger.Error("GET /items/search - Failed to search items: text=%q, error=%v", text, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /items/search - Search completed: text=%q, count=%d", text, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
