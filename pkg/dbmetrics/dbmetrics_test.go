package dbmetrics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct{ DBExecutor }

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeDB struct{ DBExecutor }

func TestOperation(t *testing.T) {
	tests := map[string]string{
		"SELECT id FROM housings":                 "select",
		"  insert INTO booking_periods (id)":      "insert",
		"UPDATE booking_seasons SET base_price=1": "update",
		"":                                        "unknown",
	}

	for query, expected := range tests {
		assert.Equal(t, expected, Operation(query), query)
	}
}

func TestGetExecutor(t *testing.T) {
	db := fakeDB{}
	tx := fakeTx{}

	assert.False(t, IsInTransaction(context.Background()))
	assert.Equal(t, db, GetExecutor(context.Background(), db))

	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))
	assert.Equal(t, tx, GetExecutor(ctx, db))
}

type fakeRecorder struct {
	operations []string
}

func (f *fakeRecorder) RecordDBQuery(operation string, _ time.Duration, _ error) {
	f.operations = append(f.operations, operation)
}

func (f *fakeRecorder) SetDBStats(sql.DBStats) {}

func TestRecord(t *testing.T) {
	assert.NotPanics(t, func() {
		Wrap(&sql.DB{}).record("SELECT 1", time.Now(), nil)
	})

	rec := &fakeRecorder{}
	d := &DB{recorder: rec}
	d.record("DELETE FROM booking_periods", time.Now(), nil)
	(&Tx{recorder: rec}).record("INSERT INTO housings", time.Now(), nil)

	assert.Equal(t, []string{"delete", "insert"}, rec.operations)
}
