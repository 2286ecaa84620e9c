package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	basecontroller "github.com/KehindeA533/openai-backend/core/controller"
	"github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/core/logger"
	"github.com/KehindeA533/openai-backend/modules/calendar/dto"
	"github.com/KehindeA533/openai-backend/modules/calendar/entity"
	"github.com/KehindeA533/openai-backend/modules/calendar/repository"
	"github.com/KehindeA533/openai-backend/modules/calendar/service"
)

type CalendarController struct {
	service service.CalendarService
	store   repository.EventStore
	keyFn   repository.KeyFunc
	basecontroller.BaseController
}

func NewCalendarController(svc service.CalendarService, store repository.EventStore, keyFn repository.KeyFunc) *CalendarController {
	if keyFn == nil {
		keyFn = repository.EventIDKey
	}
	return &CalendarController{
		service:        svc,
		store:          store,
		keyFn:          keyFn,
		BaseController: basecontroller.NewBaseController(),
	}
}

// CreateEvent books a reservation with the calendar provider and caches the
// returned event id. The local record is written only after the provider
// confirms; a validation failure makes no provider call and no store
// mutation.
// POST /calendar/events
func (c *CalendarController) CreateEvent(ctx echo.Context) error {
	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		return c.BadRequest(errors.ErrInvalidInput,
			"Missing required fields: "+strings.Join(missing, ", "))
	}

	created, err := c.service.CreateEvent(ctx.Request().Context(), req.ToReservation(""))
	if err != nil {
		return err
	}
	if created == nil || created.Id == "" {
		return c.InternalServerError(errors.ErrInternalServer, "Failed to create event")
	}

	if err := c.store.Save(req.ToReservation(created.Id)); err != nil {
		return err
	}

	logger.Info("calendar event created", "event_id", created.Id)
	return ctx.JSON(http.StatusCreated, created)
}

// UpdateEvent accepts either the provider event id or the reservation
// holder's name in the path, merges the submitted fields over the stored
// record and pushes the result to the provider before refreshing the cache.
// PUT /calendar/events/:eventId
func (c *CalendarController) UpdateEvent(ctx echo.Context) error {
	idOrName := ctx.Param("eventId")
	if idOrName == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing required fields: eventId")
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	rec := c.resolve(idOrName, req.UserID)
	if rec == nil {
		return c.NotFound(errors.ErrNotFound, "Event not found")
	}

	merged := req.MergeInto(*rec)
	updated, err := c.service.UpdateEvent(ctx.Request().Context(), rec.EventID, merged)
	if err != nil {
		return err
	}

	if err := c.store.Save(merged); err != nil {
		return err
	}

	logger.Info("calendar event updated", "event_id", rec.EventID)
	return ctx.JSON(http.StatusOK, updated)
}

// DeleteEvent removes the event at the provider and then, only on provider
// confirmation, drops the local record and its name index entry.
// DELETE /calendar/events/:eventId
func (c *CalendarController) DeleteEvent(ctx echo.Context) error {
	idOrName := ctx.Param("eventId")
	if idOrName == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing required fields: eventId")
	}

	var req dto.DeleteEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	rec := c.resolve(idOrName, req.UserID)
	if rec == nil {
		return c.NotFound(errors.ErrNotFound, "Event not found")
	}

	result, err := c.service.DeleteEvent(ctx.Request().Context(), rec.EventID)
	if err != nil {
		return err
	}

	c.store.Remove(c.keyFn(*rec))

	logger.Info("calendar event deleted", "event_id", rec.EventID)
	return ctx.JSON(http.StatusOK, result)
}

// GetAllEvents returns every cached reservation.
// GET /calendar/events
func (c *CalendarController) GetAllEvents(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.store.All())
}

// GetMonthlyEvents buckets cached reservations into the previous, current
// and next calendar month.
// GET /calendar/events/monthly
func (c *CalendarController) GetMonthlyEvents(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, c.store.Monthly())
}

// GetUserEvents lists the reservations owned by one user.
// GET /calendar/users/:userId/events
func (c *CalendarController) GetUserEvents(ctx echo.Context) error {
	userID := ctx.Param("userId")
	if userID == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Missing required fields: userId")
	}
	return ctx.JSON(http.StatusOK, c.store.ByUser(userID))
}

// resolve looks the path segment up as a store key first and falls back to
// the name index.
func (c *CalendarController) resolve(idOrName, userID string) *entity.Reservation {
	key := c.keyFn(entity.Reservation{EventID: idOrName, UserID: userID})
	if rec := c.store.Get(key); rec != nil {
		return rec
	}
	return c.store.GetByName(idOrName)
}
