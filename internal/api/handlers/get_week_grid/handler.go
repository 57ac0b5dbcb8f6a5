package get_week_grid

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/occupancy"
)

const (
	msgWeekNotFound = "год или неделя указаны неверно"
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

// Handle GET /api/v1/occupancy/week/{year}/{week}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, errYear := strconv.Atoi(vars["year"])
	week, errWeek := strconv.Atoi(vars["week"])
	if errYear != nil || errWeek != nil {
		h.logger.Warn("GET /occupancy/week/{year}/{week} - Invalid path: year=%q, week=%q", vars["year"], vars["week"])
		handlers.RespondNotFound(w, msgWeekNotFound)
		return
	}

	grid, err := h.service.WeekGrid(r.Context(), year, week)
	if err != nil {
		switch {
		case errors.Is(err, occupancy.ErrWeekNotFound):
			h.logger.Warn("GET /occupancy/week/{year}/{week} - Week not found: year=%d, week=%d", year, week)
			handlers.RespondNotFound(w, msgWeekNotFound)

		default:
			h.logger.Error("GET /occupancy/week/{year}/{week} - Failed to get week grid: year=%d, week=%d, error=%v",
				year, week, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /occupancy/week/{year}/{week} - Week grid retrieved: year=%d, week=%d, rows=%d",
		year, week, len(grid.Rows))
	handlers.RespondJSON(w, http.StatusOK, grid)
}

// Redirect GET /api/v1/occupancy/week - редирект на текущую ISO-неделю
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	current := h.service.CurrentWeek()
	handlers.RespondRedirect(w, r, fmt.Sprintf("/api/v1/occupancy/week/%d/%d", current.Year, current.Week))
}
