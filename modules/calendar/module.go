package calendar

import (
	"github.com/labstack/echo/v4"

	"github.com/KehindeA533/openai-backend/core/config"
	"github.com/KehindeA533/openai-backend/core/database"
	"github.com/KehindeA533/openai-backend/core/logger"
	"github.com/KehindeA533/openai-backend/modules/calendar/controller"
	"github.com/KehindeA533/openai-backend/modules/calendar/repository"
	"github.com/KehindeA533/openai-backend/modules/calendar/router"
	"github.com/KehindeA533/openai-backend/modules/calendar/service"
)

// Init wires the calendar module. Records live in memory unless Postgres is
// configured; both stores key by provider event id with a name index layered
// on the memory store.
func Init(e *echo.Echo, cfg *config.Config, db *database.Database) {
	var store repository.EventStore
	if db != nil {
		pgStore, err := repository.NewPostgresStore(db)
		if err != nil {
			logger.Error("calendar: postgres store unavailable, falling back to memory", "error", err)
		} else {
			store = pgStore
		}
	}
	if store == nil {
		store = repository.NewMemoryStore(repository.WithNameIndex())
	}

	events := service.NewGoogleEvents(&cfg.Google)
	svc := service.NewCalendarService(events)
	ctrl := controller.NewCalendarController(svc, store, repository.EventIDKey)

	router.NewCalendarRouter(ctrl).Setup(e)
}
