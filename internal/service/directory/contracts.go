package directory

import (
	"context"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetAll(ctx context.Context, activeOnly bool) ([]*domain.Employee, error)
}

// WorkplaceRepository интерфейс репозитория рабочих мест
type WorkplaceRepository interface {
	GetFloors(ctx context.Context, officeOnly bool) ([]*domain.FloorInfo, error)
}

// InfoRepository интерфейс репозитория справочных записей
type InfoRepository interface {
	GetAll(ctx context.Context) ([]*domain.InfoEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
