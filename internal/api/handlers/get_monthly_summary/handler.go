package get_monthly_summary

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/occupancy"
)

const (
	msgMonthNotFound = "год или месяц указаны неверно"
	msgConfiguration = "регион в настройках не поддерживается календарем праздников"
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

// Handle GET /api/v1/occupancy/summary/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, errYear := strconv.Atoi(vars["year"])
	month, errMonth := strconv.Atoi(vars["month"])
	if errYear != nil || errMonth != nil {
		h.logger.Warn("GET /occupancy/summary/{year}/{month} - Invalid path: year=%q, month=%q", vars["year"], vars["month"])
		handlers.RespondNotFound(w, msgMonthNotFound)
		return
	}

	summary, err := h.service.MonthlySummary(r.Context(), year, time.Month(month))
	if err != nil {
		switch {
		case errors.Is(err, occupancy.ErrMonthNotFound):
			h.logger.Warn("GET /occupancy/summary/{year}/{month} - Month not found: year=%d, month=%d", year, month)
			handlers.RespondNotFound(w, msgMonthNotFound)

		case errors.Is(err, occupancy.ErrConfiguration):
			h.logger.Error("GET /occupancy/summary/{year}/{month} - Configuration error: %v", err)
			handlers.RespondUnprocessable(w, msgConfiguration)

		default:
			h.logger.Error("GET /occupancy/summary/{year}/{month} - Failed to get summary: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /occupancy/summary/{year}/{month} - Summary retrieved: year=%d, month=%d, persons=%d, workdays=%d",
		year, month, len(summary.Persons), summary.Workdays)
	handlers.RespondJSON(w, http.StatusOK, summary)
}

// Redirect GET /api/v1/occupancy/summary - редирект на текущий месяц
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	current := h.service.CurrentMonth()
	handlers.RespondRedirect(w, r, fmt.Sprintf("/api/v1/occupancy/summary/%d/%d", current.Year, int(current.Month)))
}
