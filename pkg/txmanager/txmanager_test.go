package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
)

func openTestDB(t *testing.T) *dbmetrics.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL)`)
	require.NoError(t, err)

	return dbmetrics.Wrap(db)
}

func countItems(t *testing.T, db *dbmetrics.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
	return n
}

func TestTransactionManager_Do_Commits(t *testing.T) {
	db := openTestDB(t)
	tm := NewTransactionManager(db)

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, "a")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, db))
}

func TestTransactionManager_Do_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	tm := NewTransactionManager(db)
	errBoom := errors.New("boom")

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, `INSERT INTO items (name) VALUES (?)`, "a")
		require.NoError(t, err)
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, countItems(t, db))
}

func TestTransactionManager_Do_ReusesOuterTransaction(t *testing.T) {
	db := openTestDB(t)
	tm := NewTransactionManager(db)

	err := tm.Do(context.Background(), func(outer context.Context) error {
		return tm.Do(outer, func(inner context.Context) error {
			assert.Same(t, dbmetrics.GetExecutor(outer, db), dbmetrics.GetExecutor(inner, db))
			_, err := dbmetrics.GetExecutor(inner, db).ExecContext(inner, `INSERT INTO items (name) VALUES (?)`, "b")
			return err
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, countItems(t, db))
}
