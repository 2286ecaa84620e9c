package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/logger"
)

type Middleware struct {
	cfg *config.Config
}

func NewMiddleware(cfg *config.Config) *Middleware {
	return &Middleware{cfg: cfg}
}

// APIKey validates the x-api-key header against the configured allow-list.
// Calendar routes are open; everything else sits behind this gate.
func (m *Middleware) APIKey() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get("x-api-key")
			if key == "" || !m.isAllowedKey(key) {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "Forbidden: Invalid API Key",
				})
			}
			return next(c)
		}
	}
}

func (m *Middleware) isAllowedKey(key string) bool {
	for _, allowed := range m.cfg.APIKeys {
		if key == allowed {
			return true
		}
	}
	return false
}

// RateLimiter applies a per-IP limit. State lives in process memory, so
// counters reset on restart. Skipped entirely in the test environment.
func (m *Middleware) RateLimiter() echo.MiddlewareFunc {
	perSecond := rate.Limit(float64(m.cfg.RateLimit.PerMinute) / 60.0)
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      perSecond,
		Burst:     m.cfg.RateLimit.Burst,
		ExpiresIn: 3 * time.Minute,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			return m.cfg.IsTest()
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, map[string]string{
				"error": "Unable to identify client for rate limiting.",
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{
				"error": "Too many requests from this IP. Please try again later.",
			})
		},
	})
}

// RequestLogger logs every request on completion with method, path, status
// and duration.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			res := c.Response()
			logger.Info("http request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"ip", c.RealIP(),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}
