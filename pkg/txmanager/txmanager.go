package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-WorkplaceService/pkg/dbmetrics"
)

// Коды ошибок PostgreSQL, после которых транзакцию можно повторить
const (
	codeSerializationFailure pq.ErrorCode = "40001"
	codeDeadlockDetected     pq.ErrorCode = "40P01"
	codeLockNotAvailable     pq.ErrorCode = "55P03"
)

var (
	// ErrBeginTx возвращается, если не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, если не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrRetriesExhausted возвращается, когда все попытки завершились конфликтом
	ErrRetriesExhausted = errors.New("txmanager: retries exhausted")
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// Options параметры менеджера транзакций
type Options struct {
	// MaxRetries количество повторов после первой попытки
	MaxRetries int
	// LockTimeout значение SET LOCAL lock_timeout, 0 - не задавать
	LockTimeout time.Duration
	// RetryBackoff базовая пауза между попытками, растет линейно
	RetryBackoff time.Duration
}

// TransactionManager выполняет функции внутри транзакции, положенной в контекст
type TransactionManager struct {
	db   TxBeginner
	opts Options
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner, opts Options) *TransactionManager {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &TransactionManager{db: db, opts: opts}
}

// Do выполняет fn в транзакции READ COMMITTED без повторов
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted}, fn)
}

// DoReadOnly выполняет fn в транзакции только для чтения
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в транзакции SERIALIZABLE
// Конфликты сериализации, дедлоки и lock_timeout повторяются до MaxRetries раз
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt <= m.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := m.wait(ctx, attempt); err != nil {
				return fmt.Errorf("%w: %w", ErrRetriesExhausted, lastErr)
			}
		}

		err := m.run(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: %w", ErrRetriesExhausted, lastErr)
}

func (m *TransactionManager) wait(ctx context.Context, attempt int) error {
	if m.opts.RetryBackoff <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(attempt) * m.opts.RetryBackoff)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует внешнюю транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if m.opts.LockTimeout > 0 {
		// SET не поддерживает плейсхолдеры, значение формируется из числа
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.opts.LockTimeout.Milliseconds())
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: set lock_timeout: %w", ErrBeginTx, err)
		}
	}

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}
	return nil
}

// IsRetryable сообщает, что ошибка вызвана конфликтом конкурентных транзакций
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return true
	default:
		return false
	}
}
