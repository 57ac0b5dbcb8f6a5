package submit_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.EmployeeID) == "" {
		return fmt.Errorf("%w: employeeID is required", ErrInvalidInput)
	}

	if req.WorkplaceID <= 0 {
		return fmt.Errorf("%w: workplaceID must be positive", ErrInvalidInput)
	}

	if req.Day.IsZero() {
		return fmt.Errorf("%w: day is required", ErrInvalidInput)
	}

	return nil
}

// validateDay проверяет, что день попадает в окно бронирования [today, today+horizonDays]
func validateDay(day, today types.Date, horizonDays int) error {
	if isDateInPast(day, today) {
		return ErrDayInPast
	}

	if day.After(today.AddDays(horizonDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDayBeyondHorizon, horizonDays)
	}

	return nil
}

// isDateInPast проверяет, что день раньше сегодняшнего
func isDateInPast(day, today types.Date) bool {
	return day.Before(today)
}
