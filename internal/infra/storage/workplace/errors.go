package workplace

import "errors"

var (
	// ErrWorkplaceNotFound возвращается, когда рабочее место не найдено
	ErrWorkplaceNotFound = errors.New("workplace.repository: workplace not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("workplace.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("workplace.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("workplace.repository: failed to scan row")
)
