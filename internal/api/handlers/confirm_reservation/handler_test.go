package confirm_reservation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/infra/confirmlog"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

const body = `{"name":"John","surname":"Doe","car_number":"AB-1234",` +
	`"period_start":"2025-02-22 09:00","period_end":"2025-02-22 17:00","approval_time":"2025-02-22T08:00:00Z"}`

func newSink(t *testing.T, key string) (http.Handler, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "confirmed.txt")

	h := NewHandler(confirmlog.NewWriter(path), logger.Nop())
	h.timeProvider = fixedClock{now: time.Date(2025, 2, 22, 9, 30, 0, 0, time.UTC)}

	r := mux.NewRouter()
	r.Handle("/confirmed", middleware.APIKey(key)(http.HandlerFunc(h.Handle))).Methods(http.MethodPost)
	return r, path
}

func post(h http.Handler, payload, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/confirmed", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(middleware.APIKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func lines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.SplitAfter(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestHandle_Authentication(t *testing.T) {
	h, path := newSink(t, "abc")

	rec := post(h, body, "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or missing API key")
	assert.Empty(t, lines(t, path))

	rec = post(h, body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, lines(t, path))

	rec = post(h, body, "abc")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ConfirmedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, ConfirmedResponse{Status: "written", File: path}, resp)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "John Doe | AB-1234 | 2025-02-22 09:00 to 2025-02-22 17:00 | 2025-02-22T08:00:00Z\n", string(data))
}

func TestHandle_NoKeyConfigured(t *testing.T) {
	h, path := newSink(t, "")

	rec := post(h, body, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, lines(t, path), 1)
}

func TestHandle_DefaultApprovalTime(t *testing.T) {
	h, path := newSink(t, "")

	payload := `{"name":"Ana","surname":"Ito","car_number":"X1","period_start":"a","period_end":"b"}`
	rec := post(h, payload, "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ana Ito | X1 | a to b | 2025-02-22T09:30:00Z\n", string(data))
}

func TestHandle_BadRequests(t *testing.T) {
	h, path := newSink(t, "")

	rec := post(h, `{"name":"John"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "car_number")

	rec = post(h, `{`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, lines(t, path))
}

func TestHandle_RejectsLineBreaks(t *testing.T) {
	h, path := newSink(t, "")

	forged := `{"name":"John","surname":"Doe\nMallory Evil | XX-0000 | a to b | 2025-01-01T00:00:00Z",` +
		`"car_number":"AB-1234","period_start":"2025-02-22 09:00","period_end":"2025-02-22 17:00"}`
	rec := post(h, forged, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "surname")

	rec = post(h, strings.Replace(body, `08:00:00Z"`, `08:00:00Z\r"`, 1), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "approval_time")

	assert.Empty(t, lines(t, path))
}

func TestHandle_IgnoresUnknownFields(t *testing.T) {
	h, path := newSink(t, "")

	payload := strings.Replace(body, `{"name"`, `{"reservation_id":7,"name"`, 1)
	rec := post(h, payload, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, lines(t, path), 1)
}
