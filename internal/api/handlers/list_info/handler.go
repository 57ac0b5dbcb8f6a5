package list_info

import (
	"net/http"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/info
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListInfo(r.Context())
	if err != nil {
		h.logger.Error("GET /info - Failed to list info entries: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /info - Info entries retrieved: count=%d", len(entries))
	handlers.RespondJSON(w, http.StatusOK, entries)
}
