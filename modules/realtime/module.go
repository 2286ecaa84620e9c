package realtime

import (
	"github.com/labstack/echo/v4"

	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/middleware"
	"github.com/KehindeA533/openai-backend/modules/realtime/controller"
	"github.com/KehindeA533/openai-backend/modules/realtime/router"
	"github.com/KehindeA533/openai-backend/modules/realtime/service"
)

func Init(e *echo.Echo, cfg *config.Config) {
	svc := service.NewRealtimeService(&cfg.OpenAI)
	ctrl := controller.NewRealtimeController(svc)
	mw := middleware.NewMiddleware(cfg)

	router.NewRealtimeRouter(ctrl).Setup(e, mw)
}
