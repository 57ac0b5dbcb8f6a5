package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExecutor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil, "test")

	t.Run("without transaction", func(t *testing.T) {
		ctx := context.Background()
		assert.False(t, IsInTransaction(ctx))
		assert.Same(t, wrapped, GetExecutor(ctx, wrapped))
	})

	t.Run("with transaction", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := wrapped.BeginTx(context.Background(), nil)
		require.NoError(t, err)

		ctx := WithTx(context.Background(), tx)
		assert.True(t, IsInTransaction(ctx))
		assert.Same(t, tx, GetExecutor(ctx, wrapped))

		mock.ExpectRollback()
		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
