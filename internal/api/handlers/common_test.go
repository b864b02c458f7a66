package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Message string `json:"message"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"hi"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "hi", dst.Message)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"hi","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestDecodeJSONAllowUnknown(t *testing.T) {
	var dst struct {
		Message string `json:"message"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"message":"hi","extra":1}`))
	require.NoError(t, DecodeJSONAllowUnknown(r, &dst))
	assert.Equal(t, "hi", dst.Message)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSONAllowUnknown(r, &dst))
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "нет такой заявки")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Code: http.StatusNotFound, Message: "нет такой заявки"}, body)
}
