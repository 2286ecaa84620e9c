package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/middleware"
	"github.com/KehindeA533/openai-backend/core/server"
	"github.com/KehindeA533/openai-backend/modules/weather/controller"
	"github.com/KehindeA533/openai-backend/modules/weather/router"
)

type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) Forecast(ctx context.Context, zipCode string) (map[string]any, error) {
	args := m.Called(ctx, zipCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func setup(t *testing.T) (http.Handler, *MockWeatherService) {
	t.Helper()

	cfg := &config.Config{
		Server:    config.ServerConfig{Env: config.EnvTest},
		APIKeys:   []string{"secret-key"},
		RateLimit: config.RateLimitConfig{PerMinute: 1000, Burst: 1000},
	}

	svc := new(MockWeatherService)
	ctrl := controller.NewWeatherController(svc)

	e := server.New(cfg)
	router.NewWeatherRouter(ctrl).Setup(e, middleware.NewMiddleware(cfg))
	return e, svc
}

func TestGetForecast(t *testing.T) {
	h, svc := setup(t)

	svc.On("Forecast", mock.Anything, "11215").
		Return(map[string]any{"location": map[string]any{"name": "Brooklyn"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/weather/forecast?zipCode=11215", nil)
	req.Header.Set("x-api-key", "secret-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	location, ok := body["location"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Brooklyn", location["name"])
}

func TestGetForecastMissingZipCode(t *testing.T) {
	h, svc := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/weather/forecast?zipCode=%20%20", nil)
	req.Header.Set("x-api-key", "secret-key")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "A valid zip code string is required.", body["error"])
	svc.AssertNotCalled(t, "Forecast", mock.Anything, mock.Anything)
}

func TestGetForecastRequiresAPIKey(t *testing.T) {
	h, svc := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/weather/forecast?zipCode=11215", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	svc.AssertNotCalled(t, "Forecast", mock.Anything, mock.Anything)
}
