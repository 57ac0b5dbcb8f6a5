package occupancy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetDetails(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetails, error)
}

// WorkplaceRepository интерфейс репозитория рабочих мест
type WorkplaceRepository interface {
	GetAll(ctx context.Context, officeOnly bool) ([]*domain.WorkplaceInfo, error)
	GetFloors(ctx context.Context, officeOnly bool) ([]*domain.FloorInfo, error)
	GetLocationCapacities(ctx context.Context) ([]*domain.LocationCapacity, error)
}

// SettingsProvider интерфейс загрузки настроек
type SettingsProvider interface {
	Load(ctx context.Context) (*domain.Settings, error)
}

// HolidayOracle интерфейс календаря рабочих дней
type HolidayOracle interface {
	WorkingDaysBetween(region string, start, end types.Date) (int, error)
}

// SummaryCache интерфейс кэша месячных сводок
type SummaryCache interface {
	Version(ctx context.Context, year int, month time.Month) (string, error)
	Get(ctx context.Context, year int, month time.Month, version string, dst any) (bool, error)
	Set(ctx context.Context, year int, month time.Month, version string, value any) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
