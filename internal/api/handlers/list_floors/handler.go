package list_floors

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

// Handle GET /api/v1/floors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	floors, err := h.service.ListFloors(r.Context())
	if err != nil {
		h.logger.Error("GET /floors - Failed to list floors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /floors - Floors retrieved: count=%d", len(floors))
	handlers.RespondJSON(w, http.StatusOK, floors)
}
