package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/KehindeA533/openai-backend/core/config"
)

// EventsAPI is the slice of the Google Calendar surface the service needs.
type EventsAPI interface {
	Insert(ctx context.Context, ev *calendar.Event) (*calendar.Event, error)
	Update(ctx context.Context, eventID string, ev *calendar.Event) (*calendar.Event, error)
	Delete(ctx context.Context, eventID string) error
}

const primaryCalendarID = "primary"

// googleEvents talks to the primary calendar of the service account's user.
// The underlying client is built lazily on first use: credentials may be
// absent at startup (the auth script runs separately), and each request
// re-attempts until a token is available.
type googleEvents struct {
	cfg *config.GoogleConfig

	mu  sync.Mutex
	svc *calendar.Service
}

func NewGoogleEvents(cfg *config.GoogleConfig) EventsAPI {
	return &googleEvents{cfg: cfg}
}

func (g *googleEvents) service(ctx context.Context) (*calendar.Service, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.svc != nil {
		return g.svc, nil
	}

	creds, err := loadJSON(g.cfg.CredentialsJSON, g.cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load Google credentials: %w", err)
	}

	oauthCfg, err := google.ConfigFromJSON(creds, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Google credentials: %w", err)
	}

	tokenBytes, err := loadJSON(g.cfg.TokenJSON, g.cfg.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("authentication required, run the auth script first: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenBytes, &token); err != nil {
		return nil, fmt.Errorf("failed to parse Google token: %w", err)
	}

	client := oauthCfg.Client(ctx, &token)
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	g.svc = svc
	return svc, nil
}

// loadJSON prefers the inline JSON blob (production deploys pass it through
// the environment) and falls back to the file path for local development.
func loadJSON(inline, path string) ([]byte, error) {
	if inline != "" {
		return []byte(inline), nil
	}
	return os.ReadFile(path)
}

func (g *googleEvents) Insert(ctx context.Context, ev *calendar.Event) (*calendar.Event, error) {
	svc, err := g.service(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Events.Insert(primaryCalendarID, ev).Context(ctx).Do()
}

func (g *googleEvents) Update(ctx context.Context, eventID string, ev *calendar.Event) (*calendar.Event, error) {
	svc, err := g.service(ctx)
	if err != nil {
		return nil, err
	}
	return svc.Events.Update(primaryCalendarID, eventID, ev).Context(ctx).Do()
}

func (g *googleEvents) Delete(ctx context.Context, eventID string) error {
	svc, err := g.service(ctx)
	if err != nil {
		return err
	}
	return svc.Events.Delete(primaryCalendarID, eventID).Context(ctx).Do()
}
