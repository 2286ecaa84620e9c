package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	basecontroller "github.com/KehindeA533/openai-backend/core/controller"
	"github.com/KehindeA533/openai-backend/modules/realtime/service"
)

type RealtimeController struct {
	service service.RealtimeService
	basecontroller.BaseController
}

func NewRealtimeController(svc service.RealtimeService) *RealtimeController {
	return &RealtimeController{
		service:        svc,
		BaseController: basecontroller.NewBaseController(),
	}
}

// CreateSession returns the provider's session payload unmodified, including
// the short-lived client secret the frontend uses to connect.
// GET /session
func (c *RealtimeController) CreateSession(ctx echo.Context) error {
	data, err := c.service.CreateSession(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, data)
}

// GetEphemeralKey returns just the ephemeral key for clients that do not
// need the full session payload.
// GET /getEKey
func (c *RealtimeController) GetEphemeralKey(ctx echo.Context) error {
	key, err := c.service.EphemeralKey(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, map[string]string{"ephemeralKey": key})
}
