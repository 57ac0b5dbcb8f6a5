package settings

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) (*domain.Settings, error)
}

// RegionRegistry интерфейс справочника регионов календаря праздников
type RegionRegistry interface {
	Supports(region string) bool
	Regions() []string
}

// SummaryCache интерфейс сброса кэша месячных сводок
type SummaryCache interface {
	InvalidateAll(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
