package info

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkplaceService/pkg/psqlbuilder"
)

// Repository репозиторий страницы информации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория информации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает записи в порядке отображения, одинаковый порядок разрешается порядком вставки
func (r *Repository) GetAll(ctx context.Context) ([]*domain.InfoEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "title", "content", "display_order").
		From("info_entries").
		OrderBy("display_order ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.InfoEntry, 0)

	for rows.Next() {
		var e domain.InfoEntry
		if err := rows.Scan(&e.ID, &e.Title, &e.Content, &e.Order); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return entries, nil
}
