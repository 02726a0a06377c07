package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/accounts-go/apperror"
	"github.com/user/accounts-go/httpx"
)

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	httpx.WriteSuccess(rec, http.StatusCreated, "User registered successfully", map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["status"])
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, map[string]interface{}{"id": "abc"}, body["data"])
}

func TestWriteSuccessOmitsNilData(t *testing.T) {
	rec := httptest.NewRecorder()

	httpx.WriteSuccess(rec, http.StatusOK, "ok", nil)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	_, present := body["data"]
	assert.False(t, present)
}

func TestWriteErrorWithAppError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/42", nil)

	httpx.WriteError(rec, req, apperror.NewNotFoundError("User not found", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "User not found", body["message"])
}

func TestWriteErrorWrapsUnknownErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	httpx.WriteError(rec, req, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
	// internal detail is not leaked to the client
	assert.Equal(t, "an unexpected error occurred", body["message"])
}
