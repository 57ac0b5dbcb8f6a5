package employee

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, first_name, last_name, is_student, is_active FROM employees WHERE id = $1",
	)).
		WithArgs("E-1").
		WillReturnRows(sqlmock.NewRows(employeeColumns).AddRow("E-1", "Ada", "Lovelace", false, true))

	got, err := repo.GetByID(context.Background(), "E-1")
	require.NoError(t, err)
	assert.Equal(t, "Lovelace, Ada", got.FullName())
	assert.True(t, got.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM employees").WillReturnRows(sqlmock.NewRows(employeeColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestGetAll_ActiveOnly(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM employees WHERE is_active = $1 ORDER BY last_name ASC, first_name ASC, id ASC",
	)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(employeeColumns).
			AddRow("E-2", "Alan", "Turing", false, true).
			AddRow("S-1", "Grace", "Hopper", true, true))

	got, err := repo.GetAll(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[1].IsStudent)
	assert.NoError(t, mock.ExpectationsWereMet())
}
