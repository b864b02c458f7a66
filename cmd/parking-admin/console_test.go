package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/dispatcher"
	decideReservationUC "github.com/m04kA/SMC-ParkingService/internal/usecase/decide_reservation"
)

type fakeReviewer struct {
	items     []decideReservationUC.PendingItem
	decisions []*decideReservationUC.Request
	warning   string
}

func (f *fakeReviewer) Review(context.Context, bool) ([]decideReservationUC.PendingItem, error) {
	return f.items, nil
}

func (f *fakeReviewer) Execute(_ context.Context, req *decideReservationUC.Request) (*decideReservationUC.Response, error) {
	f.decisions = append(f.decisions, req)
	return &decideReservationUC.Response{
		Action:   req.Action,
		Warning:  f.warning,
		Delivery: &dispatcher.Result{Path: dispatcher.DeliveredLocal},
	}, nil
}

func pending(id int64) decideReservationUC.PendingItem {
	return decideReservationUC.PendingItem{
		Reservation: &domain.ReservationRequest{
			ID: id, Name: "John", Surname: "Doe", CarNumber: "AB-1234",
			PeriodStart: "2025-02-22 09:00", PeriodEnd: "2025-02-22 17:00",
			Status: domain.StatusPending, CreatedAt: time.Date(2025, 2, 21, 18, 0, 0, 0, time.UTC),
		},
		SummaryErr: errors.New("llm down"),
	}
}

func TestConsole_Run(t *testing.T) {
	reviewer := &fakeReviewer{items: []decideReservationUC.PendingItem{pending(1), pending(2), pending(3)}}
	in := strings.NewReader("x\na\nr\nno spaces\ns\n")
	var out bytes.Buffer

	require.NoError(t, newConsole(reviewer, in, &out, true).run(context.Background()))

	require.Len(t, reviewer.decisions, 3)
	assert.Equal(t, decideReservationUC.ActionApprove, reviewer.decisions[0].Action)
	assert.Equal(t, decideReservationUC.ActionRefuse, reviewer.decisions[1].Action)
	assert.Equal(t, "no spaces", reviewer.decisions[1].Comment)
	assert.Equal(t, decideReservationUC.ActionSkip, reviewer.decisions[2].Action)

	text := out.String()
	assert.Contains(t, text, "--- 3 pending request(s) ---")
	assert.Contains(t, text, "Enter a, r, or s.")
	assert.Contains(t, text, "(Summary unavailable: llm down)")
	assert.Contains(t, text, "Skipped.")
	assert.Contains(t, text, "Done.")
}

func TestConsole_ApprovalWarning(t *testing.T) {
	reviewer := &fakeReviewer{
		items:   []decideReservationUC.PendingItem{pending(1)},
		warning: "Approved (DB updated). Write to file failed: disk full",
	}
	var out bytes.Buffer

	require.NoError(t, newConsole(reviewer, strings.NewReader("approve\n"), &out, false).run(context.Background()))
	assert.Contains(t, out.String(), "Write to file failed: disk full")
	assert.NotContains(t, out.String(), "Summary")
}

func TestConsole_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newConsole(&fakeReviewer{}, strings.NewReader(""), &out, false).run(context.Background()))
	assert.Equal(t, "No pending reservation requests.\n", out.String())
}

func TestConsole_InputEnds(t *testing.T) {
	reviewer := &fakeReviewer{items: []decideReservationUC.PendingItem{pending(1), pending(2)}}
	var out bytes.Buffer

	require.NoError(t, newConsole(reviewer, strings.NewReader("s\n"), &out, false).run(context.Background()))
	assert.Len(t, reviewer.decisions, 1)
}
