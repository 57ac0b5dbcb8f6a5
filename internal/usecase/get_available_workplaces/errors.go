package get_available_workplaces

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_workplaces: internal error")
)
