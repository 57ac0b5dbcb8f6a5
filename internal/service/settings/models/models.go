package models

import "time"

// UpdateSettingsRequest запрос на обновление настроек
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	ISORegion        *string `json:"isoRegion,omitempty" validate:"omitnil,isoregion"`
	MinOfficePercent *int    `json:"minOfficePercent,omitempty" validate:"omitnil,min=0,max=100"`
}

// SettingsResponse ответ с текущими настройками
type SettingsResponse struct {
	ISORegion        string     `json:"isoRegion"`
	MinOfficePercent int        `json:"minOfficePercent"`
	SupportedRegions []string   `json:"supportedRegions"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}
