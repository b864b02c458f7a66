package reservation

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/database"
	"github.com/m04kA/SMC-ParkingService/pkg/sqlbuilder"
)

func newTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, database.Options{
		Driver: sqlbuilder.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "parking.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(ctx, db, sqlbuilder.DriverSQLite))

	return NewRepository(db, sqlbuilder.New(sqlbuilder.DriverSQLite)), db
}

func newRequest(name string, createdAt time.Time) *domain.ReservationRequest {
	return &domain.ReservationRequest{
		Name:        name,
		Surname:     "Doe",
		CarNumber:   "AB-1234",
		PeriodStart: "2025-02-22 09:00",
		PeriodEnd:   "2025-02-22 17:00",
		Status:      domain.StatusPending,
		CreatedAt:   createdAt,
	}
}

func TestRepository_CreateAndGetByID(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	createdAt := time.Date(2025, 2, 21, 12, 30, 0, 0, time.UTC)

	created, err := repo.Create(ctx, newRequest("John", createdAt))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", got.Name)
	assert.Equal(t, "AB-1234", got.CarNumber)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Empty(t, got.AdminComment)
	assert.True(t, createdAt.Equal(got.CreatedAt))
	assert.Nil(t, got.DecidedAt)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_Create_ConcurrentIDsAreUnique(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	const n = 20

	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.Create(ctx, newRequest("John", time.Now().UTC()))
			if assert.NoError(t, err) {
				ids <- created.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		assert.Positive(t, id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	// следующая заявка получает id больше всех выданных
	next, err := repo.Create(ctx, newRequest("Jane", time.Now().UTC()))
	require.NoError(t, err)
	assert.Equal(t, int64(n+1), next.ID)
}

func TestRepository_GetByStatus_OrderedOldestFirst(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2025, 2, 21, 8, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, newRequest("Late", base.Add(2*time.Hour)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newRequest("Early", base))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newRequest("SameAsEarly", base))
	require.NoError(t, err)

	pending, err := repo.GetByStatus(ctx, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "Early", pending[0].Name)
	assert.Equal(t, "SameAsEarly", pending[1].Name)
	assert.Equal(t, "Late", pending[2].Name)

	approved, err := repo.GetByStatus(ctx, domain.StatusApproved)
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestRepository_UpdateDecision(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newRequest("John", time.Now().UTC()))
	require.NoError(t, err)

	decidedAt := time.Date(2025, 2, 22, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateDecision(ctx, created.ID, domain.StatusRefused, "no spaces", decidedAt))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefused, got.Status)
	assert.Equal(t, "no spaces", got.AdminComment)
	require.NotNil(t, got.DecidedAt)
	assert.True(t, decidedAt.Equal(*got.DecidedAt))

	// второй переход не применяется
	err = repo.UpdateDecision(ctx, created.ID, domain.StatusApproved, "", decidedAt.Add(time.Hour))
	assert.ErrorIs(t, err, ErrNotPending)

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefused, got.Status)
	assert.Equal(t, "no spaces", got.AdminComment)
	assert.True(t, decidedAt.Equal(*got.DecidedAt))
}

func TestRepository_UpdateDecision_UnknownID(t *testing.T) {
	repo, _ := newTestRepository(t)

	err := repo.UpdateDecision(context.Background(), 42, domain.StatusApproved, "", time.Now())
	assert.ErrorIs(t, err, ErrNotPending)
}
