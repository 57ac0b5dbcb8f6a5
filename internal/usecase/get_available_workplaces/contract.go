package get_available_workplaces

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByDay(ctx context.Context, day types.Date) ([]*domain.Reservation, error)
}

// WorkplaceRepository интерфейс репозитория рабочих мест
type WorkplaceRepository interface {
	GetAll(ctx context.Context, officeOnly bool) ([]*domain.WorkplaceInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
