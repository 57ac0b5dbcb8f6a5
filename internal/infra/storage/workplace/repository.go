package workplace

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

var workplaceInfoColumns = []string{
	"w.id",
	"w.floor_id",
	"w.name",
	"f.name",
	"l.id",
	"l.name",
	"l.is_office",
}

// Repository репозиторий справочника локаций, этажей и рабочих мест
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих мест
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectWorkplaceInfo() squirrel.SelectBuilder {
	return psqlbuilder.Select(workplaceInfoColumns...).
		From("workplaces w").
		Join("floors f ON f.id = w.floor_id").
		Join("locations l ON l.id = f.location_id")
}

// GetByID получает рабочее место вместе с этажом и локацией
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WorkplaceInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectWorkplaceInfo().
		Where(squirrel.Eq{"w.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var w domain.WorkplaceInfo
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&w.ID,
		&w.FloorID,
		&w.Name,
		&w.FloorName,
		&w.LocationID,
		&w.LocationName,
		&w.IsOffice,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkplaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan workplace: %w", ErrScanRow, err)
	}

	return &w, nil
}

// GetAll получает все рабочие места, упорядоченные по (is_office, name)
// officeOnly оставляет только места в офисных локациях
func (r *Repository) GetAll(ctx context.Context, officeOnly bool) ([]*domain.WorkplaceInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectWorkplaceInfo().
		OrderBy("l.is_office ASC", "w.name ASC", "w.id ASC")

	if officeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"l.is_office": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	workplaces := make([]*domain.WorkplaceInfo, 0)

	for rows.Next() {
		var w domain.WorkplaceInfo
		err := rows.Scan(
			&w.ID,
			&w.FloorID,
			&w.Name,
			&w.FloorName,
			&w.LocationID,
			&w.LocationName,
			&w.IsOffice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}
		workplaces = append(workplaces, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return workplaces, nil
}

// GetFloors получает этажи с названием локации, упорядоченные по локации и названию этажа
func (r *Repository) GetFloors(ctx context.Context, officeOnly bool) ([]*domain.FloorInfo, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"f.id",
		"f.location_id",
		"f.name",
		"f.floor_map",
		"l.name",
		"l.is_office",
	).
		From("floors f").
		Join("locations l ON l.id = f.location_id").
		OrderBy("l.name ASC", "f.name ASC")

	if officeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"l.is_office": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFloors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFloors - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	floors := make([]*domain.FloorInfo, 0)

	for rows.Next() {
		var f domain.FloorInfo
		var floorMap sql.NullString

		err := rows.Scan(
			&f.ID,
			&f.LocationID,
			&f.Name,
			&floorMap,
			&f.LocationName,
			&f.IsOffice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetFloors - scan row: %w", ErrScanRow, err)
		}
		if floorMap.Valid {
			f.FloorMap = &floorMap.String
		}
		floors = append(floors, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetFloors - rows error: %w", ErrScanRow, err)
	}

	return floors, nil
}

// GetLocationCapacities получает офисные локации с количеством рабочих мест
// Локации без мест возвращаются с нулевым количеством
func (r *Repository) GetLocationCapacities(ctx context.Context) ([]*domain.LocationCapacity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"l.id",
		"l.name",
		"l.is_office",
		"COUNT(w.id)",
	).
		From("locations l").
		LeftJoin("floors f ON f.location_id = l.id").
		LeftJoin("workplaces w ON w.floor_id = f.id").
		Where(squirrel.Eq{"l.is_office": true}).
		GroupBy("l.id", "l.name", "l.is_office").
		OrderBy("l.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLocationCapacities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocationCapacities - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	capacities := make([]*domain.LocationCapacity, 0)

	for rows.Next() {
		var c domain.LocationCapacity
		if err := rows.Scan(&c.ID, &c.Name, &c.IsOffice, &c.WorkplaceCount); err != nil {
			return nil, fmt.Errorf("%w: GetLocationCapacities - scan row: %w", ErrScanRow, err)
		}
		capacities = append(capacities, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetLocationCapacities - rows error: %w", ErrScanRow, err)
	}

	return capacities, nil
}
