package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/SP-BookingService/pkg/dbmetrics"
)

// fakeTx транзакция-заглушка: запросы не выполняются, важны только Commit/Rollback
type fakeTx struct {
	dbmetrics.DBExecutor

	commitErr error
	committed bool
	rolledBck bool
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBck = true
	return nil
}

// fakeBeginner выдаёт по одной транзакции за попытку
type fakeBeginner struct {
	txs    []*fakeTx
	begins int
}

func (b *fakeBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if b.begins >= len(b.txs) {
		return nil, errors.New("no more transactions")
	}
	tx := b.txs[b.begins]
	b.begins++
	return tx, nil
}

func serializationErr() *pq.Error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializable_RetriesWrappedSerializationFailure(t *testing.T) {
	// Репозитории оборачивают ошибку драйвера как "%w: детали: %w" -
	// она должна распознаваться сквозь обёртку
	sentinel := errors.New("storage: failed to execute query")
	wrapped := fmt.Errorf("%w: FindConflicts - execute query: %w", sentinel, serializationErr())

	beginner := &fakeBeginner{txs: []*fakeTx{{}, {}, {}}}
	manager := NewTransactionManager(beginner)

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return wrapped
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableRetries, calls)
	assert.Equal(t, maxSerializableRetries, beginner.begins)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.ErrorIs(t, err, sentinel)
}

func TestDoSerializable_RetriesCommitSerializationFailure(t *testing.T) {
	// При SSI конфликт чаще всего обнаруживается на Commit
	beginner := &fakeBeginner{txs: []*fakeTx{
		{commitErr: serializationErr()},
		{},
	}}
	manager := NewTransactionManager(beginner)

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, beginner.begins)
	assert.True(t, beginner.txs[1].committed)
}

func TestDoSerializable_DoesNotRetryOtherErrors(t *testing.T) {
	beginner := &fakeBeginner{txs: []*fakeTx{{}, {}, {}}}
	manager := NewTransactionManager(beginner)

	businessErr := errors.New("bookings: conflicting booking")
	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return businessErr
	})

	require.ErrorIs(t, err, businessErr)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, beginner.begins)
	assert.True(t, beginner.txs[0].rolledBck)
}

func TestDoSerializable_ExhaustedRetriesKeepCause(t *testing.T) {
	beginner := &fakeBeginner{txs: []*fakeTx{
		{commitErr: serializationErr()},
		{commitErr: serializationErr()},
		{commitErr: serializationErr()},
	}}
	manager := NewTransactionManager(beginner)

	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.ErrorIs(t, err, ErrTxFailed)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
	assert.Equal(t, maxSerializableRetries, beginner.begins)
}
