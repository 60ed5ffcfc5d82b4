package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func Test_RespondJSON(t *testing.T) {
	t.Run("writes payload with content type", func(t *testing.T) {
		rr := httptest.NewRecorder()

		RespondJSON(rr, discardLogger(), http.StatusOK, map[string]string{"key": "value"})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"key":"value"}`, rr.Body.String())
	})

	t.Run("nil payload writes status only", func(t *testing.T) {
		rr := httptest.NewRecorder()

		RespondJSON(rr, discardLogger(), http.StatusNoContent, nil)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func Test_RespondError(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondError(rr, discardLogger(), http.StatusNotFound, "not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rr.Body.String())
}

func Test_RespondValidationErrors(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondValidationErrors(rr, discardLogger(), []string{"Name: failed on rule: required"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errors":["Name: failed on rule: required"]}`, rr.Body.String())
}

func Test_ParseID(t *testing.T) {
	t.Run("returns the path value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/abc-123", nil)
		req.SetPathValue("id", "abc-123")
		rr := httptest.NewRecorder()

		id, ok := ParseID(rr, req, discardLogger())

		assert.True(t, ok)
		assert.Equal(t, "abc-123", id)
	})

	t.Run("missing id responds 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/", nil)
		rr := httptest.NewRecorder()

		_, ok := ParseID(rr, req, discardLogger())

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
