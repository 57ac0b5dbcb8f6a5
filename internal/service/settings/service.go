package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-WorkplaceService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-WorkplaceService/internal/service/settings/models"
)

// Service сервис настроек (регион календаря и порог посещаемости офиса)
type Service struct {
	repo     SettingsRepository
	regions  RegionRegistry
	cache    SummaryCache
	validate *validator.Validate
	logger   Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, regions RegionRegistry, cache SummaryCache, logger Logger) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("isoregion", func(fl validator.FieldLevel) bool {
		return regions.Supports(fl.Field().String())
	})

	return &Service{
		repo:     repo,
		regions:  regions,
		cache:    cache,
		validate: v,
		logger:   logger,
	}
}

// Load загружает настройки для передачи в операции
// Если строка настроек отсутствует, возвращаются значения по умолчанию
func (s *Service) Load(ctx context.Context) (*domain.Settings, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Load: settings row not found, using defaults")
			return domain.DefaultSettings(), nil
		}
		s.logger.Error("Load: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return stored, nil
}

// Get возвращает текущие настройки
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponse(current), nil
}

// Update обновляет настройки
// Некорректный регион или порог отклоняются при записи, а не при построении отчетов
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	// 1. Нормализуем код региона
	if req.ISORegion != nil {
		region := strings.ToUpper(strings.TrimSpace(*req.ISORegion))
		req.ISORegion = &region
	}

	// 2. Валидируем входные данные
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, mapValidationError(err)
	}

	// 3. Применяем изменения к текущим настройкам
	current, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.ISORegion != nil {
		updated.ISORegion = *req.ISORegion
	}
	if req.MinOfficePercent != nil {
		updated.MinOfficePercent = *req.MinOfficePercent
	}

	saved, err := s.repo.Save(ctx, &updated)
	if err != nil {
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: failed to save settings: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved, region=%s, minOfficePercent=%d", saved.ISORegion, saved.MinOfficePercent)

	// 4. Сводки посчитаны по старому региону и порогу
	if err := s.cache.InvalidateAll(ctx); err != nil {
		s.logger.Warn("Update: failed to invalidate summary cache: %v", err)
	}

	return s.toResponse(saved), nil
}

func (s *Service) toResponse(st *domain.Settings) *models.SettingsResponse {
	resp := &models.SettingsResponse{
		ISORegion:        st.ISORegion,
		MinOfficePercent: st.MinOfficePercent,
		SupportedRegions: s.regions.Regions(),
	}
	if !st.UpdatedAt.IsZero() {
		updatedAt := st.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// mapValidationError сводит ошибки валидатора к ошибкам сервиса
func mapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	switch verrs[0].StructField() {
	case "ISORegion":
		return fmt.Errorf("%w: %v", ErrInvalidRegion, verrs[0].Value())
	case "MinOfficePercent":
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, verrs[0].Value())
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
}
