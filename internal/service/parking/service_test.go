package parking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fakeRepo struct {
	err  error
	date string
}

func (f *fakeRepo) GetWorkingHours(context.Context) ([]domain.WorkingHours, error) {
	return []domain.WorkingHours{{Day: "Monday", Open: "06:00", Close: "00:00"}}, f.err
}

func (f *fakeRepo) GetPrices(context.Context) ([]domain.Price, error) {
	return nil, f.err
}

func (f *fakeRepo) GetAvailabilitySummary(_ context.Context, date string) (*domain.AvailabilitySummary, error) {
	f.date = date
	if f.err != nil {
		return nil, f.err
	}
	return &domain.AvailabilitySummary{Date: date, Available: 3, Total: 240}, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestService_GetAvailability(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.Nop())
	svc.timeProvider = fixedClock{now: time.Date(2025, 2, 22, 10, 0, 0, 0, time.UTC)}

	summary, err := svc.GetAvailability(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-22", repo.date)
	assert.Equal(t, 3, summary.Available)

	_, err = svc.GetAvailability(context.Background(), "2025-02-23")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-23", repo.date)

	_, err = svc.GetAvailability(context.Background(), "22.02.2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestService_RepositoryErrors(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("no such table")}, logger.Nop())

	_, err := svc.GetWorkingHours(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
	_, err = svc.GetPrices(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
	_, err = svc.GetAvailability(context.Background(), "2025-02-22")
	assert.ErrorIs(t, err, ErrInternal)
}
