package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
	"github.com/m04kA/SMC-WorkplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-WorkplaceService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-WorkplaceService/pkg/types"
)

const uniqueViolation pq.ErrorCode = "23505"

var reservationColumns = []string{
	"id",
	"day",
	"employee_id",
	"workplace_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockWorkplaceDay берет advisory lock на пару (день, место) до конца транзакции
func (r *Repository) LockWorkplaceDay(ctx context.Context, day types.Date, workplaceID int64) error {
	return r.lock(ctx, fmt.Sprintf("reservation:%s:workplace:%d", day, workplaceID))
}

// LockEmployeeDay берет advisory lock на пару (день, сотрудник) до конца транзакции
func (r *Repository) LockEmployeeDay(ctx context.Context, day types.Date, employeeID string) error {
	return r.lock(ctx, fmt.Sprintf("reservation:%s:employee:%s", day, employeeID))
}

// lock работает только внутри транзакции: pg_advisory_xact_lock снимается при commit/rollback
// Ожидание ограничено lock_timeout транзакции
func (r *Repository) lock(ctx context.Context, key string) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: lock %s", ErrTransaction, key)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", key); err != nil {
		return fmt.Errorf("%w: Lock - execute: %w", ErrExecQuery, err)
	}
	return nil
}

// GetByDayAndEmployee получает бронирование сотрудника на день
// В транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByDayAndEmployee(ctx context.Context, day types.Date, employeeID string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"day": day, "employee_id": employeeID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDayAndEmployee - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDayAndEmployee - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// GetByDayAndWorkplace получает все бронирования места на день
// Для офисного места их не больше одного, для виртуального - сколько угодно
func (r *Repository) GetByDayAndWorkplace(ctx context.Context, day types.Date, workplaceID int64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"day": day, "workplace_id": workplaceID}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDayAndWorkplace - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDayAndWorkplace - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows, "GetByDayAndWorkplace")
}

// GetByDay получает все бронирования на день
func (r *Repository) GetByDay(ctx context.Context, day types.Date) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"day": day}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDay - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows, "GetByDay")
}

// Create создает новое бронирование
// Нарушение уникальности (day, employee_id) возвращается как ErrDuplicateReservation
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns("day", "employee_id", "workplace_id").
		Values(reservation.Day, reservation.EmployeeID, reservation.WorkplaceID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: Create: %w", ErrDuplicateReservation, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// UpdateWorkplace меняет место в существующем бронировании
func (r *Repository) UpdateWorkplace(ctx context.Context, id int64, workplaceID int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("workplace_id", workplaceID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, day, employee_id, workplace_id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWorkplace - build update query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWorkplace - execute update: %w", ErrExecQuery, err)
	}

	return reservation, nil
}

// GetDetails получает бронирования вместе с данными сотрудника, места и локации
// Используется отчетами, читает без блокировок
func (r *Repository) GetDetails(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"r.id",
		"r.day",
		"r.employee_id",
		"r.workplace_id",
		"r.created_at",
		"r.updated_at",
		"e.first_name",
		"e.last_name",
		"e.is_student",
		"w.name",
		"w.floor_id",
		"l.id",
		"l.name",
		"l.is_office",
	).
		From("reservations r").
		Join("employees e ON e.id = r.employee_id").
		Join("workplaces w ON w.id = r.workplace_id").
		Join("floors f ON f.id = w.floor_id").
		Join("locations l ON l.id = f.location_id").
		OrderBy("r.day ASC", "w.name ASC", "r.id ASC")

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"r.day": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"r.day": *filter.To})
	}
	if filter.EmployeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.employee_id": *filter.EmployeeID})
	}
	if filter.WorkplaceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.workplace_id": *filter.WorkplaceID})
	}
	if filter.OfficeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"l.is_office": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.ReservationDetails, 0)

	for rows.Next() {
		var d domain.ReservationDetails
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.Day,
			&d.EmployeeID,
			&d.WorkplaceID,
			&createdAt,
			&updatedAt,
			&d.Employee.FirstName,
			&d.Employee.LastName,
			&d.Employee.IsStudent,
			&d.WorkplaceName,
			&d.FloorID,
			&d.LocationID,
			&d.LocationName,
			&d.IsOffice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetDetails - scan row: %w", ErrScanRow, err)
		}

		d.Employee.ID = d.EmployeeID
		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time

		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDetails - rows error: %w", ErrScanRow, err)
	}

	return details, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.Day,
		&reservation.EmployeeID,
		&reservation.WorkplaceID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

func scanReservations(rows *sql.Rows, op string) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return reservations, nil
}
