package get_week_grid

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/occupancy/models"
)

type OccupancyService interface {
	WeekGrid(ctx context.Context, year, week int) (*models.WeekGridResponse, error)
	CurrentWeek() models.WeekRef
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
