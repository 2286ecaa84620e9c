package archive

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/KehindeA533/openai-backend/core/cache"
	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/logger"
	"github.com/KehindeA533/openai-backend/core/middleware"
	"github.com/KehindeA533/openai-backend/modules/archive/controller"
	"github.com/KehindeA533/openai-backend/modules/archive/router"
	"github.com/KehindeA533/openai-backend/modules/archive/service"
)

const sessionCounterKey = "archive:session_id"

// Init wires the archival module. Session ids come from Redis when a cache
// is configured; otherwise they are derived by scanning existing session
// folders in the bucket.
func Init(e *echo.Echo, cfg *config.Config, redisCache *cache.Cache) error {
	store, err := service.NewS3Store(context.Background(), &cfg.AWS)
	if err != nil {
		return err
	}

	var counter service.SessionCounter
	if redisCache != nil {
		counter = service.NewRedisCounter(redisCache, sessionCounterKey)
	} else {
		logger.Warn("archive: redis not configured, session ids derived from bucket listing")
		counter = service.NewScanCounter(store, cfg.Archive.Prefix)
	}

	svc := service.NewArchiveService(store, counter, cfg)
	ctrl := controller.NewArchiveController(svc)

	router.NewArchiveRouter(ctrl).Setup(e, middleware.NewMiddleware(cfg))
	return nil
}
