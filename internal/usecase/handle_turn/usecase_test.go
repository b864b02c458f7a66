package handle_turn

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/extractor"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type memoryStore struct {
	requests  map[int64]*domain.ReservationRequest
	nextID    int64
	createErr error
	getErr    error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{requests: map[int64]*domain.ReservationRequest{}, nextID: 1}
}

func (s *memoryStore) Create(_ context.Context, d domain.Draft) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	id := s.nextID
	s.nextID++
	s.requests[id] = &domain.ReservationRequest{
		ID: id, Name: d.Name, Surname: d.Surname, CarNumber: d.CarNumber,
		PeriodStart: d.PeriodStart, PeriodEnd: d.PeriodEnd, Status: domain.StatusPending,
	}
	return id, nil
}

func (s *memoryStore) GetStatus(_ context.Context, id int64) (*domain.ReservationRequest, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	req, ok := s.requests[id]
	return req, ok, nil
}

type stubAnswerer struct {
	calls int
	err   error
}

func (a *stubAnswerer) Answer(_ context.Context, question string) (string, error) {
	a.calls++
	if a.err != nil {
		return "", a.err
	}
	return "answer: " + question, nil
}

type failingExtractor struct{}

func (failingExtractor) Extract(context.Context, string) (domain.Draft, error) {
	return domain.Draft{}, errors.New("llm down")
}

const fullDraftMessage = "name: John; surname: Doe; car_number: AB-1234; period_start: 2025-02-22 09:00; period_end: 2025-02-22 17:00"

func newUseCase(store *memoryStore, answerer *stubAnswerer) *UseCase {
	return NewUseCase(store, extractor.NewFieldsExtractor(), answerer, logger.Nop())
}

func TestParseRequestID(t *testing.T) {
	tests := []struct {
		message string
		want    int64
		ok      bool
	}{
		{message: "What is the status of 12?", want: 12, ok: true},
		{message: "request #7", want: 7, ok: true},
		{message: "Status: 3", want: 3, ok: true},
		{message: "What is the status of my reservation 42?", want: 42, ok: true},
		{message: "ID 5 please", want: 5, ok: true},
		{message: "When are you open?", ok: false},
		{message: "reservation 99999999999999999999999", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			id, ok := ParseRequestID(tt.message)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestExecute_SubmitThenQuery(t *testing.T) {
	store := newMemoryStore()
	uc := newUseCase(store, &stubAnswerer{})
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{Message: fullDraftMessage})
	require.NoError(t, err)
	assert.Equal(t, RouteSubmission, resp.Route)
	require.NotNil(t, resp.ReservationID)
	assert.Equal(t, int64(1), *resp.ReservationID)
	assert.Equal(t, "Your reservation request has been sent to the administrator. Your request ID is 1. "+
		"You can ask later: 'What is the status of my reservation 1?'", resp.Reply)

	resp, err = uc.Execute(ctx, &Request{Message: "What is the status of my reservation 1?"})
	require.NoError(t, err)
	assert.Equal(t, RouteStatusQuery, resp.Route)
	assert.Equal(t, "Request 1 is still pending administrator approval.", resp.Reply)

	store.requests[1].Status = domain.StatusApproved
	resp, err = uc.Execute(ctx, &Request{Message: "status of 1"})
	require.NoError(t, err)
	assert.Equal(t, "Request 1 has been approved. Period: 2025-02-22 09:00 to 2025-02-22 17:00.", resp.Reply)

	store.requests[1].Status = domain.StatusRefused
	store.requests[1].AdminComment = "full"
	resp, err = uc.Execute(ctx, &Request{Message: "status of 1"})
	require.NoError(t, err)
	assert.Equal(t, "Request 1 was refused. Comment: full", resp.Reply)

	store.requests[1].AdminComment = ""
	resp, err = uc.Execute(ctx, &Request{Message: "status of 1"})
	require.NoError(t, err)
	assert.Equal(t, "Request 1 was refused.", resp.Reply)
}

func TestExecute_UnknownStatus(t *testing.T) {
	answerer := &stubAnswerer{}
	resp, err := newUseCase(newMemoryStore(), answerer).Execute(context.Background(), &Request{Message: "status of 999"})
	require.NoError(t, err)
	assert.Equal(t, RouteStatusQuery, resp.Route)
	assert.Equal(t, "There is no reservation request with ID 999.", resp.Reply)
	assert.Nil(t, resp.ReservationID)
	assert.Zero(t, answerer.calls)
}

func TestExecute_StatusQueryWinsOverSubmission(t *testing.T) {
	store := newMemoryStore()
	resp, err := newUseCase(store, &stubAnswerer{}).
		Execute(context.Background(), &Request{Message: "status of 3; " + fullDraftMessage})
	require.NoError(t, err)
	assert.Equal(t, RouteStatusQuery, resp.Route)
	assert.Empty(t, store.requests)
}

func TestExecute_PartialDraftIsGeneralQuery(t *testing.T) {
	store := newMemoryStore()
	answerer := &stubAnswerer{}

	resp, err := newUseCase(store, answerer).
		Execute(context.Background(), &Request{Message: "name: John; surname: Doe"})
	require.NoError(t, err)
	assert.Equal(t, RouteGeneralQuery, resp.Route)
	assert.Equal(t, "answer: name: John; surname: Doe", resp.Reply)
	assert.Empty(t, store.requests)
	assert.Equal(t, 1, answerer.calls)
}

func TestExecute_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("create fails", func(t *testing.T) {
		store := newMemoryStore()
		store.createErr = errors.New("disk full")
		resp, err := newUseCase(store, &stubAnswerer{}).Execute(ctx, &Request{Message: fullDraftMessage})
		require.NoError(t, err)
		assert.Equal(t, RouteSubmission, resp.Route)
		assert.Equal(t, replySubmitFailed, resp.Reply)
		assert.Nil(t, resp.ReservationID)
	})

	t.Run("lookup fails", func(t *testing.T) {
		store := newMemoryStore()
		store.getErr = errors.New("db locked")
		resp, err := newUseCase(store, &stubAnswerer{}).Execute(ctx, &Request{Message: "request #4"})
		require.NoError(t, err)
		assert.Equal(t, "Sorry, I could not check request 4 right now. Please try again later.", resp.Reply)
	})

	t.Run("extractor fails", func(t *testing.T) {
		answerer := &stubAnswerer{}
		uc := NewUseCase(newMemoryStore(), failingExtractor{}, answerer, logger.Nop())
		resp, err := uc.Execute(ctx, &Request{Message: fullDraftMessage})
		require.NoError(t, err)
		assert.Equal(t, RouteGeneralQuery, resp.Route)
		assert.Equal(t, 1, answerer.calls)
	})

	t.Run("answerer fails", func(t *testing.T) {
		resp, err := newUseCase(newMemoryStore(), &stubAnswerer{err: errors.New("timeout")}).
			Execute(ctx, &Request{Message: "Do you have EV chargers?"})
		require.NoError(t, err)
		assert.Equal(t, RouteGeneralQuery, resp.Route)
		assert.Equal(t, replyAnswerFailed, resp.Reply)
	})

	t.Run("empty message", func(t *testing.T) {
		_, err := newUseCase(newMemoryStore(), &stubAnswerer{}).Execute(ctx, &Request{Message: "   "})
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})
}
