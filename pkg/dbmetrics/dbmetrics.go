package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
)

// DefaultCollectInterval период опроса статистики connection pool
const DefaultCollectInterval = 15 * time.Second

// DBExecutor общий интерфейс для *sql.DB, *sql.Tx и *DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxExecutor транзакция
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txKey struct{}

// WithTx кладёт транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey{}).(TxExecutor); ok && tx != nil {
		return tx
	}
	return db
}

// IsInTransaction сообщает, выполняется ли код внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey{}).(TxExecutor)
	return ok && tx != nil
}

// DB обёртка над *sql.DB, отдающая транзакции как TxExecutor
type DB struct {
	*sql.DB
}

// Wrap оборачивает *sql.DB без сбора метрик
func Wrap(db *sql.DB) *DB {
	return &DB{DB: db}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор метрик пула до закрытия stop
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stop <-chan struct{}) *DB {
	wrapped := Wrap(db)
	go wrapped.CollectPoolStats(m, dbName, DefaultCollectInterval, stop)
	return wrapped
}

// BeginTx начинает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// CollectPoolStats периодически публикует sql.DBStats в Prometheus
func (d *DB) CollectPoolStats(m *metrics.Metrics, dbName string, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.publish(m, dbName)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			d.publish(m, dbName)
		}
	}
}

func (d *DB) publish(m *metrics.Metrics, dbName string) {
	stats := d.Stats()
	m.DBOpenConnections.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
	m.DBInUseConnections.WithLabelValues(dbName).Set(float64(stats.InUse))
	m.DBIdleConnections.WithLabelValues(dbName).Set(float64(stats.Idle))
	m.DBWaitCount.WithLabelValues(dbName).Set(float64(stats.WaitCount))
}
