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

	"github.com/m04kA/SMC-SeasonPricingService/pkg/dbmetrics"
)

type fakeTx struct {
	dbmetrics.DBExecutor
	commitErrs []error
	committed  int
	rolledBack int
}

func (f *fakeTx) Commit() error {
	f.committed++
	if len(f.commitErrs) > 0 {
		err := f.commitErrs[0]
		f.commitErrs = f.commitErrs[1:]
		return err
	}
	return nil
}

func (f *fakeTx) Rollback() error {
	f.rolledBack++
	return nil
}

type fakeBeginner struct {
	tx    *fakeTx
	opts  []*sql.TxOptions
	begin error
}

func (f *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	if f.begin != nil {
		return nil, f.begin
	}
	f.opts = append(f.opts, opts)
	return f.tx, nil
}

func TestDoSerializable_CommitsAndPassesTx(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{tx: tx}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		assert.Same(t, tx, dbmetrics.GetExecutor(ctx, nil))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.committed)
	assert.Equal(t, 0, tx.rolledBack)
	assert.Equal(t, sql.LevelSerializable, db.opts[0].Isolation)
}

func TestDo_RollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	m := NewTransactionManager(&fakeBeginner{tx: tx})
	boom := errors.New("boom")

	err := m.Do(context.Background(), func(ctx context.Context) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, tx.committed)
	assert.Equal(t, 1, tx.rolledBack)
}

func TestDoSerializable_RetriesOnSerializationFailure(t *testing.T) {
	tx := &fakeTx{commitErrs: []error{&pq.Error{Code: "40001"}}}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, tx.committed)
}

func TestDoSerializable_GivesUpAfterRetries(t *testing.T) {
	failure := &pq.Error{Code: "40001"}
	tx := &fakeTx{commitErrs: []error{failure, failure, failure, failure}}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error { return nil })

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, DefaultSerializableRetries, tx.committed)
}

func TestDoReadOnly_NestedReusesOuterTx(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{tx: tx}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return m.DoReadOnly(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Len(t, db.opts, 1)
	assert.Equal(t, 1, tx.committed)
}

func TestDo_BeginError(t *testing.T) {
	m := NewTransactionManager(&fakeBeginner{begin: errors.New("no conn")})

	err := m.Do(context.Background(), func(ctx context.Context) error { return nil })

	assert.ErrorIs(t, err, ErrBeginTx)
}

func TestDoSerializable_RetriesFailureRaisedInsideFn(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{tx: tx}
	m := NewTransactionManager(db)
	internal := errors.New("usecase: internal error")

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("%w: failed to create period: %w", internal, &pq.Error{Code: "40001"})
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, db.opts, 2)
	assert.Equal(t, 1, tx.rolledBack)
	assert.Equal(t, 1, tx.committed)
}

func TestDoSerializable_OtherErrorsAreNotRetried(t *testing.T) {
	tx := &fakeTx{}
	db := &fakeBeginner{tx: tx}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return &pq.Error{Code: "23505"}
	})

	require.Error(t, err)
	assert.Len(t, db.opts, 1)
}
