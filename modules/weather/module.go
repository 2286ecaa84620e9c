package weather

import (
	"github.com/labstack/echo/v4"

	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/middleware"
	"github.com/KehindeA533/openai-backend/modules/weather/controller"
	"github.com/KehindeA533/openai-backend/modules/weather/router"
	"github.com/KehindeA533/openai-backend/modules/weather/service"
)

func Init(e *echo.Echo, cfg *config.Config) {
	svc := service.NewWeatherService(&cfg.Weather)
	ctrl := controller.NewWeatherController(svc)
	mw := middleware.NewMiddleware(cfg)

	router.NewWeatherRouter(ctrl).Setup(e, mw)
}
