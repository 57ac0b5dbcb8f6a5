package holidays

import "errors"

var (
	// ErrUnknownRegion возвращается для кода региона, для которого нет календаря
	ErrUnknownRegion = errors.New("holidays: unknown region code")
)
