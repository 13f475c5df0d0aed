package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := RequestLogger(logger)(testHandler(http.StatusConflict, `{"error":"account_exists"}`))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/signups", nil)
	req = req.WithContext(WithClientIP(req.Context(), "203.0.113.9"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"path":"/api/v1/signups"`)
	assert.Contains(t, out, `"status":409`)
	assert.Contains(t, out, `"client_ip":"203.0.113.9"`)
}

func TestRequestLogger_HealthIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	handler := RequestLogger(logger)(testHandler(http.StatusOK, `{"status":"healthy"}`))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, buf.String())
}
