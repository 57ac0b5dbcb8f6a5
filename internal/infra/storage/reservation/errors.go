package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrDuplicateReservation возвращается при нарушении уникальности (day, employee_id)
	ErrDuplicateReservation = errors.New("reservation.repository: duplicate reservation for employee and day")

	// ErrTransaction возвращается, когда операция требует транзакции, а её нет
	ErrTransaction = errors.New("reservation.repository: transaction required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
