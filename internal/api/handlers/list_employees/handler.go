package list_employees

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
)

const (
	msgInvalidIncludeInactive = "includeInactive должен быть true или false"
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

// Handle GET /api/v1/employees
// Query params: includeInactive (optional, по умолчанию false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := false
	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /employees - Invalid includeInactive: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidIncludeInactive)
			return
		}
		includeInactive = parsed
	}

	employees, err := h.service.ListEmployees(r.Context(), !includeInactive)
	if err != nil {
		h.logger.Error("GET /employees - Failed to list employees: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /employees - Employees retrieved: count=%d, includeInactive=%t", len(employees), includeInactive)
	handlers.RespondJSON(w, http.StatusOK, employees)
}
