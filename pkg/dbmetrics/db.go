// Package dbmetrics оборачивает *sql.DB сбором метрик запросов и пула соединений
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/mdemidkin1992/shareit/pkg/metrics"
)

const (
	opExec     = "exec"
	opQuery    = "query"
	opQueryRow = "query_row"
	opBegin    = "begin"
	opCommit   = "commit"
	opRollback = "rollback"

	// DefaultStatsInterval период снятия статистики пула соединений
	DefaultStatsInterval = 15 * time.Second
)

// DB обёртка над *sql.DB. При m == nil метрики не пишутся
type DB struct {
	db *sql.DB
	m  *metrics.Metrics
}

// Wrap оборачивает соединение без фонового сбора статистики пула
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, m: m}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// с интервалом DefaultStatsInterval до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	if m != nil {
		go wrapped.collectStats(DefaultStatsInterval, stopCh)
	}
	return wrapped
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(opExec, time.Now())
	res, err := d.db.ExecContext(ctx, query, args...)
	d.countError(opExec, err)
	return res, err
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(opQuery, time.Now())
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.countError(opQuery, err)
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий одну строку
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(opQueryRow, time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx открывает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	defer d.observe(opBegin, time.Now())
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		d.countError(opBegin, err)
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

// PingContext проверяет соединение с БД
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DB) observe(op string, start time.Time) {
	if d.m == nil {
		return
	}
	d.m.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (d *DB) countError(op string, err error) {
	if d.m == nil || err == nil {
		return
	}
	d.m.DBErrorsTotal.WithLabelValues(op).Inc()
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.recordStats()
		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}
}

func (d *DB) recordStats() {
	stats := d.db.Stats()
	d.m.DBOpenConnections.Set(float64(stats.OpenConnections))
	d.m.DBInUse.Set(float64(stats.InUse))
	d.m.DBIdle.Set(float64(stats.Idle))
	d.m.DBWaitCount.Set(float64(stats.WaitCount))
}

// Tx транзакция с метриками
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.parent.observe(opExec, time.Now())
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.countError(opExec, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.parent.observe(opQuery, time.Now())
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.countError(opQuery, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.parent.observe(opQueryRow, time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	defer t.parent.observe(opCommit, time.Now())
	err := t.tx.Commit()
	t.parent.countError(opCommit, err)
	return err
}

func (t *Tx) Rollback() error {
	defer t.parent.observe(opRollback, time.Now())
	return t.tx.Rollback()
}
