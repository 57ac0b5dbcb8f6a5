package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkplaceService/internal/api/handlers"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/settings"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, порог должен быть целым числом"
	msgInvalidRegion      = "код региона не поддерживается календарем праздников"
	msgInvalidThreshold   = "порог посещаемости офиса должен быть от 0 до 100"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidRegion):
			h.logger.Warn("PUT /settings - Invalid region: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidRegion)

		case errors.Is(err, settings.ErrInvalidThreshold):
			h.logger.Warn("PUT /settings - Invalid threshold: %v", err)
			handlers.RespondUnprocessable(w, msgInvalidThreshold)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated: region=%s, minOfficePercent=%d",
		updated.ISORegion, updated.MinOfficePercent)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
