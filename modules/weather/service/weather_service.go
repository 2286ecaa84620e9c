package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/core/logger"
)

// WeatherService fetches the one-day forecast for a zip code and hands the
// provider payload back untouched.
type WeatherService interface {
	Forecast(ctx context.Context, zipCode string) (map[string]any, error)
}

type weatherService struct {
	cfg        *config.WeatherConfig
	httpClient *http.Client
}

func NewWeatherService(cfg *config.WeatherConfig) WeatherService {
	return &weatherService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *weatherService) Forecast(ctx context.Context, zipCode string) (map[string]any, error) {
	params := url.Values{}
	params.Set("key", s.cfg.APIKey)
	params.Set("q", zipCode)
	params.Set("days", "1")
	params.Set("aqi", "no")
	params.Set("alerts", "no")

	endpoint := s.cfg.BaseURL + "/forecast.json?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create request", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Error("WeatherService:Forecast request failed", "error", err, "zip_code", zipCode)
		return nil, errors.NewAppError(errors.ErrUnavailable,
			fmt.Sprintf("No response received from Weather API: %v", err), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		message := upstreamErrorMessage(resp)
		logger.Error("WeatherService:Forecast API error",
			"status", resp.StatusCode,
			"message", message,
			"zip_code", zipCode,
		)
		return nil, errors.NewStatusError(resp.StatusCode,
			fmt.Sprintf("Weather API error: %s", message))
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to parse weather response", err)
	}

	logger.Info("weather forecast retrieved", "zip_code", zipCode)
	return data, nil
}

// upstreamErrorMessage pulls error.message out of the provider's error body,
// falling back to the status text.
func upstreamErrorMessage(resp *http.Response) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return http.StatusText(resp.StatusCode)
}
