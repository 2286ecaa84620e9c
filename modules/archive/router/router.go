package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KehindeA533/openai-backend/core/middleware"
	"github.com/KehindeA533/openai-backend/modules/archive/controller"
)

type ArchiveRouter struct {
	controller *controller.ArchiveController
}

func NewArchiveRouter(controller *controller.ArchiveController) *ArchiveRouter {
	return &ArchiveRouter{controller: controller}
}

// Setup registers the archival routes. Both paths predate this service and
// are kept as-is so deployed frontends keep working.
func (r *ArchiveRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.POST("/save-audio-transcript", r.controller.SaveAudioTranscript, mw.APIKey())
	e.POST("/api/save-transcript", r.controller.SaveTranscript, mw.APIKey())
}
