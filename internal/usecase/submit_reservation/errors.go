package submit_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_reservation: invalid input data")

	// ErrDayInPast возвращается при попытке забронировать прошедший день
	ErrDayInPast = errors.New("submit_reservation: invalid date - date in past")

	// ErrDayBeyondHorizon возвращается, когда день дальше горизонта бронирования
	ErrDayBeyondHorizon = errors.New("submit_reservation: invalid date - date is too far in the future")

	// ErrNonWorkingDay возвращается для выходных и праздников региона
	ErrNonWorkingDay = errors.New("submit_reservation: invalid date - not a working day")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("submit_reservation: employee not found")

	// ErrEmployeeInactive возвращается для неактивного сотрудника
	ErrEmployeeInactive = errors.New("submit_reservation: employee is inactive")

	// ErrWorkplaceNotFound возвращается, когда рабочее место не найдено
	ErrWorkplaceNotFound = errors.New("submit_reservation: workplace not found")

	// ErrWorkplaceTaken возвращается, когда офисное место на этот день занято другим сотрудником
	ErrWorkplaceTaken = errors.New("submit_reservation: workplace already taken")

	// ErrConflictRetry возвращается, когда конкурентные бронирования не дали завершить операцию вовремя
	ErrConflictRetry = errors.New("submit_reservation: concurrent reservation conflict, retry later")

	// ErrConfiguration возвращается, когда в настройках указан неизвестный регион
	ErrConfiguration = errors.New("submit_reservation: invalid settings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_reservation: internal error")
)
