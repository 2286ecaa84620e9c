package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KehindeA533/openai-backend/core/middleware"
	"github.com/KehindeA533/openai-backend/modules/weather/controller"
)

type WeatherRouter struct {
	controller *controller.WeatherController
}

func NewWeatherRouter(controller *controller.WeatherController) *WeatherRouter {
	return &WeatherRouter{controller: controller}
}

func (r *WeatherRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/weather", mw.APIKey())
	group.GET("/forecast", r.controller.GetForecast)
}
