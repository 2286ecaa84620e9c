package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/errors"
)

func serve(t *testing.T, cfg *config.Config, handler echo.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := New(cfg)
	e.GET("/boom", handler)

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func devConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Env: config.EnvTest},
		RateLimit: config.RateLimitConfig{PerMinute: 1000, Burst: 1000},
	}
}

func prodConfig() *config.Config {
	cfg := devConfig()
	cfg.Server.Env = config.EnvProduction
	return cfg
}

func TestErrorHandlerAppError(t *testing.T) {
	rec, body := serve(t, devConfig(), func(c echo.Context) error {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Event not found", body["error"])
	assert.Contains(t, body, "stack")
}

func TestErrorHandlerMirroredStatus(t *testing.T) {
	rec, body := serve(t, devConfig(), func(c echo.Context) error {
		return errors.NewStatusError(http.StatusBadGateway, "OpenAI API Error: 502 Bad Gateway")
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "OpenAI API Error: 502 Bad Gateway", body["error"])
}

func TestErrorHandlerMasksInternalErrorsInProduction(t *testing.T) {
	rec, body := serve(t, prodConfig(), func(c echo.Context) error {
		return errors.NewAppError(errors.ErrInternalServer, "pg: connection reset", nil)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", body["error"])
	assert.NotContains(t, body, "stack")
}

func TestErrorHandlerEchoHTTPError(t *testing.T) {
	rec, body := serve(t, devConfig(), func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method Not Allowed", body["error"])
}

func TestErrorHandlerPanicRecovery(t *testing.T) {
	rec, body := serve(t, prodConfig(), func(c echo.Context) error {
		panic("boom")
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", body["error"])
}

func TestRequestIDHeaderSet(t *testing.T) {
	e := New(devConfig())
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
