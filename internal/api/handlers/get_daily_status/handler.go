package get_daily_status

import (
	"net/http"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service OccupancyService
	logger  Logger
}

func NewHandler(service OccupancyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy/daily
// Query params: day (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day := h.service.Today()

	if dayStr := r.URL.Query().Get("day"); dayStr != "" {
		parsed, err := types.ParseDate(dayStr)
		if err != nil {
			h.logger.Warn("GET /occupancy/daily - Invalid day: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		day = parsed
	}

	status, err := h.service.DailyStatus(r.Context(), day)
	if err != nil {
		h.logger.Error("GET /occupancy/daily - Failed to get daily status: day=%s, error=%v", day, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /occupancy/daily - Daily status retrieved: day=%s, floors=%d", day, len(status.Floors))
	handlers.RespondJSON(w, http.StatusOK, status)
}
