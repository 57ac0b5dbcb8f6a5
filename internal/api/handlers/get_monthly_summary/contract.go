package get_monthly_summary

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/service/occupancy/models"
)

type OccupancyService interface {
	MonthlySummary(ctx context.Context, year int, month time.Month) (*models.MonthlySummaryResponse, error)
	CurrentMonth() models.MonthRef
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
