package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	basecontroller "github.com/KehindeA533/openai-backend/core/controller"
	"github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/modules/weather/service"
)

type WeatherController struct {
	service service.WeatherService
	basecontroller.BaseController
}

func NewWeatherController(svc service.WeatherService) *WeatherController {
	return &WeatherController{
		service:        svc,
		BaseController: basecontroller.NewBaseController(),
	}
}

// GetForecast returns the provider's forecast payload for a zip code.
// GET /weather/forecast?zipCode=
func (c *WeatherController) GetForecast(ctx echo.Context) error {
	zipCode := ctx.QueryParam("zipCode")
	if strings.TrimSpace(zipCode) == "" {
		return c.BadRequest(errors.ErrInvalidInput, "A valid zip code string is required.")
	}

	data, err := c.service.Forecast(ctx.Request().Context(), zipCode)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, data)
}
