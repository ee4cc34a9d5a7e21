package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, fn func(c echo.Context) error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, fn(c))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestSuccessWrapsScalarIntoList(t *testing.T) {
	rec, body := record(t, func(c echo.Context) error {
		return Success(c, http.StatusCreated, "created", map[string]string{"id": "id-1"})
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, StatusSuccess, body["status"])
	assert.Equal(t, "created", body["message"])

	data, ok := body["data"].([]any)
	require.True(t, ok, "data must always be a list")
	require.Len(t, data, 1)

	ts, ok := body["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestSuccessNilDataIsEmptyList(t *testing.T) {
	_, body := record(t, func(c echo.Context) error {
		return Success(c, http.StatusOK, "ok", nil)
	})
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestSuccessKeepsSliceShape(t *testing.T) {
	_, body := record(t, func(c echo.Context) error {
		return Success(c, http.StatusOK, "ok", []string{"a", "b"})
	})
	data := body["data"].([]any)
	assert.Equal(t, []any{"a", "b"}, data)
}

func TestSuccessNilTypedPointerIsEmptyList(t *testing.T) {
	_, body := record(t, func(c echo.Context) error {
		var p *struct{ X int }
		return Success(c, http.StatusOK, "ok", p)
	})
	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestErrorDetailOutsideProduction(t *testing.T) {
	Configure("dev")
	rec, body := record(t, func(c echo.Context) error {
		return Error(c, http.StatusBadRequest, "bad input", errors.New("field x missing"))
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, StatusFailure, body["status"])
	assert.Equal(t, "field x missing", body["error"])
}

func TestErrorDetailSuppressedInProduction(t *testing.T) {
	Configure("prod")
	defer Configure("dev")

	_, body := record(t, func(c echo.Context) error {
		return Error(c, http.StatusInternalServerError, "something went wrong", errors.New("store: status 500"))
	})
	assert.Equal(t, "something went wrong", body["message"])
	_, present := body["error"]
	assert.False(t, present, "raw detail must not leak in production")

	data, ok := body["data"].([]any)
	require.True(t, ok, "failures carry an empty data list")
	assert.Empty(t, data)
}
