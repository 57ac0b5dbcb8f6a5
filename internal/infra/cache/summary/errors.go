package summary

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации значения
	ErrEncode = errors.New("summary.cache: failed to encode value")

	// ErrDecode возвращается при ошибке десериализации значения
	ErrDecode = errors.New("summary.cache: failed to decode value")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("summary.cache: redis error")
)
