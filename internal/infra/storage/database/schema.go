package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/pkg/sqlbuilder"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS reservation_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		surname TEXT NOT NULL,
		car_number TEXT NOT NULL,
		period_start TEXT NOT NULL,
		period_end TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'refused')),
		admin_comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		decided_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservation_requests_status ON reservation_requests (status, created_at, id)`,
	`CREATE TABLE IF NOT EXISTS working_hours (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day TEXT NOT NULL,
		open_time TEXT NOT NULL,
		close_time TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		space_type TEXT NOT NULL,
		first_hour REAL NOT NULL,
		next_hours REAL NOT NULL,
		day_max REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS availability (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		space_id INTEGER NOT NULL,
		slot_date TEXT NOT NULL,
		hour_slot INTEGER NOT NULL,
		available INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS idx_availability_slot_date ON availability (slot_date)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS reservation_requests (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		surname TEXT NOT NULL,
		car_number TEXT NOT NULL,
		period_start TEXT NOT NULL,
		period_end TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'refused')),
		admin_comment TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		decided_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservation_requests_status ON reservation_requests (status, created_at, id)`,
	`CREATE TABLE IF NOT EXISTS working_hours (
		id BIGSERIAL PRIMARY KEY,
		day TEXT NOT NULL,
		open_time TEXT NOT NULL,
		close_time TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prices (
		id BIGSERIAL PRIMARY KEY,
		space_type TEXT NOT NULL,
		first_hour DOUBLE PRECISION NOT NULL,
		next_hours DOUBLE PRECISION NOT NULL,
		day_max DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS availability (
		id BIGSERIAL PRIMARY KEY,
		space_id INTEGER NOT NULL,
		slot_date TEXT NOT NULL,
		hour_slot INTEGER NOT NULL,
		available INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE INDEX IF NOT EXISTS idx_availability_slot_date ON availability (slot_date)`,
}

// Migrate создает таблицы, если их ещё нет
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	statements := sqliteSchema
	if driver == sqlbuilder.DriverPostgres {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", ErrMigrate, err)
		}
	}
	return nil
}
