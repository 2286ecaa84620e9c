package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"

	"github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/core/logger"
	"github.com/KehindeA533/openai-backend/modules/calendar/dto"
	"github.com/KehindeA533/openai-backend/modules/calendar/entity"
)

const (
	eventTimezone       = "America/New_York"
	reservationDuration = time.Hour
	dateTimeLayout      = "2006-01-02T15:04"
	readableLayout      = "Monday, January 2 at 3:04 PM"
)

// CalendarService is the provider boundary: one synchronous call per
// operation, no retries. The returned event is the provider's payload.
type CalendarService interface {
	CreateEvent(ctx context.Context, rec entity.Reservation) (*calendar.Event, error)
	UpdateEvent(ctx context.Context, eventID string, rec entity.Reservation) (*calendar.Event, error)
	DeleteEvent(ctx context.Context, eventID string) (*dto.DeleteEventResponse, error)
}

type calendarService struct {
	events EventsAPI
}

func NewCalendarService(events EventsAPI) CalendarService {
	return &calendarService{events: events}
}

func (s *calendarService) CreateEvent(ctx context.Context, rec entity.Reservation) (*calendar.Event, error) {
	resource, err := buildEventResource(rec, false)
	if err != nil {
		return nil, err
	}

	created, err := s.events.Insert(ctx, resource)
	if err != nil {
		logger.Error("CalendarService:CreateEvent failed", "error", err)
		return nil, mapProviderError("create event", err)
	}

	logger.Info("calendar event created", "event_id", created.Id)
	return created, nil
}

func (s *calendarService) UpdateEvent(ctx context.Context, eventID string, rec entity.Reservation) (*calendar.Event, error) {
	resource, err := buildEventResource(rec, true)
	if err != nil {
		return nil, err
	}

	updated, err := s.events.Update(ctx, eventID, resource)
	if err != nil {
		logger.Error("CalendarService:UpdateEvent failed", "error", err, "event_id", eventID)
		return nil, mapProviderError("update event", err)
	}

	logger.Info("calendar event updated", "event_id", eventID)
	return updated, nil
}

func (s *calendarService) DeleteEvent(ctx context.Context, eventID string) (*dto.DeleteEventResponse, error) {
	if err := s.events.Delete(ctx, eventID); err != nil {
		logger.Error("CalendarService:DeleteEvent failed", "error", err, "event_id", eventID)
		return nil, mapProviderError("delete event", err)
	}

	logger.Info("calendar event deleted", "event_id", eventID)
	return &dto.DeleteEventResponse{Success: true, EventID: eventID}, nil
}

// buildEventResource assembles the one-hour reservation event sent to the
// provider. Reminders: email a day ahead, popup half an hour ahead.
func buildEventResource(rec entity.Reservation, update bool) (*calendar.Event, error) {
	loc, err := time.LoadLocation(eventTimezone)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to load event timezone", err)
	}

	start, err := time.ParseInLocation(dateTimeLayout, rec.Date+"T"+rec.Time, loc)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("invalid reservation date/time: %s %s", rec.Date, rec.Time), err)
	}
	end := start.Add(reservationDuration)

	verb := "confirmed"
	if update {
		verb = "updated"
	}
	description := fmt.Sprintf("Reservation %s for %s on %s for %d people. We look forward to serving you!",
		verb, rec.Name, start.Format(readableLayout), rec.PartySize)

	return &calendar.Event{
		Summary:     fmt.Sprintf("Reservation for %s", rec.Name),
		Location:    fmt.Sprintf("%s, %s", rec.RestaurantName, rec.RestaurantAddress),
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: eventTimezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: eventTimezone,
		},
		Attendees: []*calendar.EventAttendee{
			{Email: rec.Email},
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 1440},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}, nil
}

// mapProviderError mirrors the provider's status code when one is present;
// network-level failures surface as 503.
func mapProviderError(op string, err error) error {
	var gerr *googleapi.Error
	if stderrors.As(err, &gerr) {
		msg := gerr.Message
		if msg == "" {
			msg = gerr.Error()
		}
		appErr := errors.NewStatusError(gerr.Code, fmt.Sprintf("Google Calendar API error: %s", msg))
		appErr.Err = err
		return appErr
	}

	appErr := errors.NewAppError(errors.ErrUnavailable, fmt.Sprintf("failed to %s: %v", op, err), err)
	return appErr
}
