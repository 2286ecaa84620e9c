package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KehindeA533/openai-backend/core/middleware"
	"github.com/KehindeA533/openai-backend/modules/realtime/controller"
)

type RealtimeRouter struct {
	controller *controller.RealtimeController
}

func NewRealtimeRouter(controller *controller.RealtimeController) *RealtimeRouter {
	return &RealtimeRouter{controller: controller}
}

// Setup registers the session-bootstrap routes at the root, matching the
// paths the frontend expects.
func (r *RealtimeRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.GET("/session", r.controller.CreateSession, mw.APIKey())
	e.GET("/getEKey", r.controller.GetEphemeralKey, mw.APIKey())
}
