package get_daily_status

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/occupancy/models"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

type OccupancyService interface {
	DailyStatus(ctx context.Context, day types.Date) (*models.DailyStatusResponse, error)
	Today() types.Date
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
