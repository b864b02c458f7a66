package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/pkg/sqlbuilder"
)

func TestOpenMigrateSeed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "parking.db")

	db, err := Open(ctx, Options{Driver: sqlbuilder.DriverSQLite, DSN: path})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db, sqlbuilder.DriverSQLite))
	// повторная миграция не должна падать
	require.NoError(t, Migrate(ctx, db, sqlbuilder.DriverSQLite))

	fixture, err := DefaultFixture()
	require.NoError(t, err)
	require.Len(t, fixture.WorkingHours, 7)
	require.Len(t, fixture.Prices, 3)

	today := time.Date(2025, 2, 22, 10, 0, 0, 0, time.UTC)
	seeded, err := Seed(ctx, db, sqlbuilder.DriverSQLite, fixture, today)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = Seed(ctx, db, sqlbuilder.DriverSQLite, fixture, today)
	require.NoError(t, err)
	assert.False(t, seeded, "seed must run only on an empty database")

	var slots int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM availability`).Scan(&slots))
	assert.Equal(t, 10*7*24, slots)

	var firstDay string
	require.NoError(t, db.QueryRow(`SELECT day FROM working_hours ORDER BY id LIMIT 1`).Scan(&firstDay))
	assert.Equal(t, "Monday", firstDay)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "mysql"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
