package employee

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

var employeeColumns = []string{
	"id",
	"first_name",
	"last_name",
	"is_student",
	"is_active",
}

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает сотрудника по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(employeeColumns...).
		From("employees").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var e domain.Employee
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&e.ID,
		&e.FirstName,
		&e.LastName,
		&e.IsStudent,
		&e.IsActive,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan employee: %w", ErrScanRow, err)
	}

	return &e, nil
}

// GetAll получает сотрудников, упорядоченных по фамилии и имени
// activeOnly оставляет только активных (для выбора при бронировании)
func (r *Repository) GetAll(ctx context.Context, activeOnly bool) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(employeeColumns...).
		From("employees").
		OrderBy("last_name ASC", "first_name ASC", "id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
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

	employees := make([]*domain.Employee, 0)

	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.IsStudent, &e.IsActive); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}
		employees = append(employees, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return employees, nil
}
