package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KehindeA533/openai-backend/core/config"
)

func testMiddleware(env string) *Middleware {
	return NewMiddleware(&config.Config{
		Server:    config.ServerConfig{Env: env},
		APIKeys:   []string{"key-one", "key-two"},
		RateLimit: config.RateLimitConfig{PerMinute: 60, Burst: 1},
	})
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAPIKeyAllowsConfiguredKeys(t *testing.T) {
	e := echo.New()
	handler := testMiddleware(config.EnvTest).APIKey()(okHandler)

	for _, key := range []string{"key-one", "key-two"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("x-api-key", key)
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAPIKeyRejectsMissingOrUnknownKey(t *testing.T) {
	e := echo.New()
	handler := testMiddleware(config.EnvTest).APIKey()(okHandler)

	for _, key := range []string{"", "wrong-key"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if key != "" {
			req.Header.Set("x-api-key", key)
		}
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Forbidden: Invalid API Key", body["error"])
	}
}

func TestRateLimiterDeniesBurstOverflow(t *testing.T) {
	e := echo.New()
	handler := testMiddleware(config.EnvDevelopment).RateLimiter()(okHandler)

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		return rec
	}

	assert.Equal(t, http.StatusOK, do().Code)

	rec := do()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Too many requests from this IP. Please try again later.", body["error"])
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	e := echo.New()
	handler := testMiddleware(config.EnvDevelopment).RateLimiter()(okHandler)

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		return rec
	}

	assert.Equal(t, http.StatusOK, do("203.0.113.7:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, do("203.0.113.7:1234").Code)
	assert.Equal(t, http.StatusOK, do("198.51.100.9:1234").Code)
}

func TestRateLimiterSkippedInTestEnv(t *testing.T) {
	e := echo.New()
	handler := testMiddleware(config.EnvTest).RateLimiter()(okHandler)

	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
