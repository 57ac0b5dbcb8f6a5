package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settings: invalid input data")

	// ErrInvalidRegion возвращается, когда код региона не поддерживается календарем праздников
	ErrInvalidRegion = errors.New("settings: unsupported ISO region code")

	// ErrInvalidThreshold возвращается, когда порог посещаемости вне диапазона 0..100
	ErrInvalidThreshold = errors.New("settings: office threshold must be between 0 and 100")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings: internal error")
)
