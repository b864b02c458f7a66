package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-ParkingService/pkg/sqlbuilder"
)

// Options параметры подключения
type Options struct {
	Driver          string
	DSN             string // для sqlite путь к файлу
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// sqlitePragmas WAL и ожидание блокировки вместо немедленного SQLITE_BUSY
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_time_format=sqlite"

// Open открывает БД, проверяет соединение и настраивает пул
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch opts.Driver {
	case sqlbuilder.DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(opts.DSN), 0o755); err != nil {
			return nil, fmt.Errorf("%w: create database directory: %v", ErrOpen, err)
		}
		db, err = sql.Open("sqlite", "file:"+opts.DSN+"?"+sqlitePragmas)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOpen, err)
		}
		// Один писатель: запись в sqlite всё равно сериализуется
		db.SetMaxOpenConns(1)

	case sqlbuilder.DriverPostgres:
		db, err = sql.Open("postgres", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOpen, err)
		}
		if opts.MaxOpenConns > 0 {
			db.SetMaxOpenConns(opts.MaxOpenConns)
		}
		if opts.MaxIdleConns > 0 {
			db.SetMaxIdleConns(opts.MaxIdleConns)
		}
		if opts.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(opts.ConnMaxLifetime)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, opts.Driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrOpen, err)
	}

	return db, nil
}
