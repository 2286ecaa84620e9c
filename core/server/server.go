package server

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/KehindeA533/openai-backend/core/cache"
	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/database"
	"github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/core/logger"
	"github.com/KehindeA533/openai-backend/core/middleware"
	"github.com/KehindeA533/openai-backend/modules/archive"
	"github.com/KehindeA533/openai-backend/modules/calendar"
	"github.com/KehindeA533/openai-backend/modules/realtime"
	"github.com/KehindeA533/openai-backend/modules/weather"
)

// Run loads configuration, wires every module and starts the HTTP server.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	e := New(cfg)

	var db *database.Database
	if cfg.Postgres.Enabled() {
		db, err = database.InitDB(cfg.Postgres)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	var redisCache *cache.Cache
	if cfg.Redis.Addr != "" {
		redisCache, err = cache.New(cfg.Redis)
		if err != nil {
			return err
		}
		defer redisCache.Close()
	}

	calendar.Init(e, cfg, db)
	realtime.Init(e, cfg)
	weather.Init(e, cfg)
	if err := archive.Init(e, cfg, redisCache); err != nil {
		return err
	}

	logger.Info("server starting", "port", cfg.Server.Port, "env", cfg.Server.Env)
	return e.Start(":" + cfg.Server.Port)
}

// New builds the echo instance with the shared middleware chain and the
// centralized error responder. Route registration is left to the modules.
func New(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg)

	mw := middleware.NewMiddleware(cfg)

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
	}))
	e.Use(mw.RateLimiter())
	e.Use(echomw.BodyLimit("25M"))
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(mw.RequestLogger())
	e.Use(echomw.Recover())

	return e
}

// NewHTTPErrorHandler normalizes every failure to the JSON error body:
// {"error": message} plus optional data, with a stack trace only outside
// production. Internal 500 details are masked in production.
func NewHTTPErrorHandler(cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal Server Error"
		var data any

		var appErr *errors.AppError
		var httpErr *echo.HTTPError
		switch {
		case stderrors.As(err, &appErr):
			status = appErr.HTTPStatus()
			message = appErr.Message
			data = appErr.Data
		case stderrors.As(err, &httpErr):
			status = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		default:
			message = err.Error()
		}

		logger.Error("request failed",
			"status", status,
			"error", message,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
		)

		if cfg.IsProduction() && status == http.StatusInternalServerError {
			message = "Internal Server Error"
		}

		body := map[string]any{"error": message}
		if data != nil {
			body["data"] = data
		}
		if !cfg.IsProduction() {
			body["stack"] = string(debug.Stack())
		}

		if writeErr := c.JSON(status, body); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
