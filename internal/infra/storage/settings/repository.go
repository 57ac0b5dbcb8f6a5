package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkplaceService/pkg/psqlbuilder"
)

// singletonID идентификатор единственной строки настроек
const singletonID = 1

// Repository репозиторий настроек
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("iso_region", "min_office_percent", "updated_at").
		From("settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ISORegion, &s.MinOfficePercent, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %w", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Save сохраняет настройки (upsert единственной строки)
func (r *Repository) Save(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("settings").
		Columns("id", "iso_region", "min_office_percent").
		Values(singletonID, s.ISORegion, s.MinOfficePercent).
		Suffix("ON CONFLICT (id) DO UPDATE SET iso_region = EXCLUDED.iso_region, " +
			"min_office_percent = EXCLUDED.min_office_percent, updated_at = NOW() RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Save - execute upsert: %w", ErrExecQuery, err)
	}

	saved := *s
	saved.UpdatedAt = updatedAt.Time

	return &saved, nil
}
