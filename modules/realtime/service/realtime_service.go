package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/core/logger"
)

// RealtimeService negotiates realtime sessions with the conversational-AI
// provider. The session payload is returned to the client unmodified; the
// ephemeral key inside it authorizes the browser-side WebRTC connection.
type RealtimeService interface {
	CreateSession(ctx context.Context) (map[string]any, error)
	EphemeralKey(ctx context.Context) (string, error)
}

type realtimeService struct {
	cfg        *config.OpenAIConfig
	httpClient *http.Client
}

func NewRealtimeService(cfg *config.OpenAIConfig) RealtimeService {
	return &realtimeService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type sessionRequest struct {
	Model        string `json:"model"`
	Voice        string `json:"voice"`
	Instructions string `json:"instructions"`
}

func (s *realtimeService) CreateSession(ctx context.Context) (map[string]any, error) {
	body, err := json.Marshal(sessionRequest{
		Model:        s.cfg.Model,
		Voice:        s.cfg.Voice,
		Instructions: AgentPrompt,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to encode session request", err)
	}

	url := s.cfg.BaseURL + "/realtime/sessions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Error("RealtimeService:CreateSession request failed", "error", err)
		return nil, errors.NewAppError(errors.ErrUnavailable,
			fmt.Sprintf("No response received from OpenAI API: %v", err), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorData map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errorData)
		logger.Error("RealtimeService:CreateSession API error",
			"status", resp.StatusCode,
			"data", errorData,
		)
		return nil, errors.NewStatusError(resp.StatusCode,
			fmt.Sprintf("OpenAI API Error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))
	}

	var data map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to parse session response", err)
	}

	logger.Info("openai session created")
	return data, nil
}

// EphemeralKey creates a session and extracts client_secret.value from it.
// The original deployment fetched its own /session endpoint over loopback
// HTTP; the round trip is pointless in-process, so the session call is made
// directly.
func (s *realtimeService) EphemeralKey(ctx context.Context) (string, error) {
	data, err := s.CreateSession(ctx)
	if err != nil {
		return "", err
	}

	secret, ok := data["client_secret"].(map[string]any)
	if !ok {
		return "", errors.NewAppError(errors.ErrInternalServer, "Ephemeral key not found in response", nil)
	}
	key, ok := secret["value"].(string)
	if !ok || key == "" {
		return "", errors.NewAppError(errors.ErrInternalServer, "Ephemeral key not found in response", nil)
	}

	logger.Info("ephemeral key fetched")
	return key, nil
}
