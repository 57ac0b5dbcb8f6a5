package occupancy

import "errors"

var (
	// ErrWeekNotFound возвращается для несуществующей ISO-недели
	ErrWeekNotFound = errors.New("occupancy: year or week not valid")

	// ErrMonthNotFound возвращается для несуществующего месяца
	ErrMonthNotFound = errors.New("occupancy: year or month not valid")

	// ErrConfiguration возвращается, когда регион из настроек не поддерживается
	ErrConfiguration = errors.New("occupancy: configuration error")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("occupancy: internal error")
)
