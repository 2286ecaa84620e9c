package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KehindeA533/openai-backend/modules/calendar/controller"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{controller: controller}
}

// Setup registers the calendar surface. These routes serve the voice-agent
// frontend directly and are not behind the API-key gate.
func (r *CalendarRouter) Setup(e *echo.Echo) {
	group := e.Group("/calendar")

	group.POST("/events", r.controller.CreateEvent)
	group.GET("/events", r.controller.GetAllEvents)
	group.GET("/events/monthly", r.controller.GetMonthlyEvents)
	group.PUT("/events/:eventId", r.controller.UpdateEvent)
	group.DELETE("/events/:eventId", r.controller.DeleteEvent)
	group.GET("/users/:userId/events", r.controller.GetUserEvents)
}
