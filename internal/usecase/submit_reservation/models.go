package submit_reservation

import (
	"time"

	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// Request модель запроса на бронирование
type Request struct {
	EmployeeID  string     // ID сотрудника
	Day         types.Date // День бронирования
	WorkplaceID int64      // ID рабочего места
}

// Response модель ответа с сохраненным бронированием
type Response struct {
	ID            int64      // ID бронирования
	Day           types.Date // День
	EmployeeID    string     // ID сотрудника
	WorkplaceID   int64      // ID рабочего места
	WorkplaceName string     // Название рабочего места
	LocationName  string     // Название локации
	Created       bool       // true - новая запись, false - обновлено место в существующей

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// Options параметры допуска бронирований
type Options struct {
	HorizonDays int            // Сколько дней вперед можно бронировать
	Location    *time.Location // Зона, в которой определяется "сегодня"
	Timeout     time.Duration  // Ограничение на всю операцию, 0 - без ограничения
}

// Исходы бронирования для метрик
const (
	outcomeCreated  = "created"
	outcomeUpdated  = "updated"
	outcomeRejected = "rejected"
	outcomeTaken    = "taken"
	outcomeConflict = "conflict"
	outcomeError    = "error"
)
