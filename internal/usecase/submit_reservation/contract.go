package submit_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	LockWorkplaceDay(ctx context.Context, day types.Date, workplaceID int64) error
	LockEmployeeDay(ctx context.Context, day types.Date, employeeID string) error
	GetByDayAndWorkplace(ctx context.Context, day types.Date, workplaceID int64) ([]*domain.Reservation, error)
	GetByDayAndEmployee(ctx context.Context, day types.Date, employeeID string) (*domain.Reservation, error)
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	UpdateWorkplace(ctx context.Context, id int64, workplaceID int64) (*domain.Reservation, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
}

// WorkplaceRepository интерфейс репозитория рабочих мест
type WorkplaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.WorkplaceInfo, error)
}

// SettingsProvider загружает актуальные настройки на каждую операцию
type SettingsProvider interface {
	Load(ctx context.Context) (*domain.Settings, error)
}

// HolidayOracle календарь рабочих дней
type HolidayOracle interface {
	IsWorkingDay(region string, day types.Date) (bool, error)
}

// SummaryCache кэш месячных сводок, сбрасывается после изменения бронирований
type SummaryCache interface {
	Invalidate(ctx context.Context, year int, month time.Month) error
}

// MetricsRecorder счетчик исходов бронирования
type MetricsRecorder interface {
	ObserveAdmission(outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
