package get_available_workplaces

import "github.com/m04kA/SMC-WorkplaceService/pkg/types"

// Request модель запроса доступных мест
// Оба поля необязательны: при неполных данных возвращается пустой результат
type Request struct {
	EmployeeID *string     // ID сотрудника
	Day        *types.Date // День
}

// Workplace рабочее место, которое можно предложить сотруднику
type Workplace struct {
	ID           int64
	Name         string
	FloorName    string
	LocationName string
	IsOffice     bool
}

// Response модель ответа
type Response struct {
	Workplaces          []Workplace // Упорядочены по (is_office, name)
	ReservedWorkplaceID *int64      // Место, уже забронированное сотрудником на этот день
}
