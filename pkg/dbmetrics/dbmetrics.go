// Package dbmetrics оборачивает *sql.DB: замеряет запросы и передает транзакцию через context.
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultStatsInterval период сбора статистики пула соединений
const DefaultStatsInterval = 15 * time.Second

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и обертки DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor активная транзакция
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// Recorder получатель метрик запросов (реализуется *metrics.Metrics)
type Recorder interface {
	RecordDBQuery(operation string, duration time.Duration, err error)
	SetDBStats(stats sql.DBStats)
}

type txKey struct{}

// DB обертка над *sql.DB с метриками
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает соединение без сбора метрик
func Wrap(db *sql.DB) *DB {
	return &DB{db: db}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула до закрытия stopCh
func WrapWithDefault(db *sql.DB, recorder Recorder, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, recorder: recorder}
	go wrapped.collectStats(DefaultStatsInterval, stopCh)
	return wrapped
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.record(query, start, err)
	return res, err
}

// QueryContext выполняет запрос с набором строк
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.record(query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос с одной строкой.
// Ошибка сканирования здесь не видна, учитывается только время.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.record(query, start, nil)
	return row
}

// BeginTx открывает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, recorder: d.recorder}, nil
}

// PingContext проверяет соединение
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) record(query string, start time.Time, err error) {
	if d.recorder == nil {
		return
	}
	d.recorder.RecordDBQuery(Operation(query), time.Since(start), err)
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	if d.recorder == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recorder.SetDBStats(d.db.Stats())
	for {
		select {
		case <-ticker.C:
			d.recorder.SetDBStats(d.db.Stats())
		case <-stopCh:
			return
		}
	}
}

// Tx транзакция с метриками
type Tx struct {
	tx       *sql.Tx
	recorder Recorder
}

// ExecContext выполняет запрос в транзакции
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.record(query, start, err)
	return res, err
}

// QueryContext выполняет запрос в транзакции
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.record(query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос одной строки в транзакции
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.record(query, start, nil)
	return row
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func (t *Tx) record(query string, start time.Time, err error) {
	if t.recorder == nil {
		return
	}
	t.recorder.RecordDBQuery(Operation(query), time.Since(start), err)
}

// WithTx кладет транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(TxExecutor); ok {
		return tx
	}
	return db
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(TxExecutor)
	return ok
}

// Operation извлекает тип запроса (select, insert, ...) для label метрики
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
