package dto

import (
	"github.com/KehindeA533/openai-backend/modules/calendar/entity"
)

// CreateEventRequest carries the full field set required to book a
// reservation. UserID is optional and only meaningful under the tenant
// keying scheme.
type CreateEventRequest struct {
	Date              string `json:"date"`
	Time              string `json:"time"`
	PartySize         int    `json:"partySize"`
	Email             string `json:"email"`
	RestaurantName    string `json:"restaurantName"`
	RestaurantAddress string `json:"restaurantAddress"`
	Name              string `json:"name"`
	UserID            string `json:"userId,omitempty"`
}

// MissingFields returns the names of required fields absent from the request,
// in the order the API documents them.
func (r *CreateEventRequest) MissingFields() []string {
	var missing []string
	required := []struct {
		name string
		ok   bool
	}{
		{"date", r.Date != ""},
		{"time", r.Time != ""},
		{"partySize", r.PartySize > 0},
		{"email", r.Email != ""},
		{"restaurantName", r.RestaurantName != ""},
		{"restaurantAddress", r.RestaurantAddress != ""},
		{"name", r.Name != ""},
	}
	for _, f := range required {
		if !f.ok {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func (r *CreateEventRequest) ToReservation(eventID string) entity.Reservation {
	return entity.Reservation{
		EventID:           eventID,
		Date:              r.Date,
		Time:              r.Time,
		PartySize:         r.PartySize,
		Email:             r.Email,
		RestaurantName:    r.RestaurantName,
		RestaurantAddress: r.RestaurantAddress,
		Name:              r.Name,
		UserID:            r.UserID,
	}
}

// UpdateEventRequest is a partial update; zero-valued fields keep the stored
// value.
type UpdateEventRequest struct {
	Date              string `json:"date"`
	Time              string `json:"time"`
	PartySize         int    `json:"partySize"`
	Email             string `json:"email"`
	RestaurantName    string `json:"restaurantName"`
	RestaurantAddress string `json:"restaurantAddress"`
	Name              string `json:"name"`
	UserID            string `json:"userId,omitempty"`
}

// MergeInto layers the submitted fields over the stored record and returns
// the result. EventID is never touched.
func (r *UpdateEventRequest) MergeInto(rec entity.Reservation) entity.Reservation {
	if r.Date != "" {
		rec.Date = r.Date
	}
	if r.Time != "" {
		rec.Time = r.Time
	}
	if r.PartySize > 0 {
		rec.PartySize = r.PartySize
	}
	if r.Email != "" {
		rec.Email = r.Email
	}
	if r.RestaurantName != "" {
		rec.RestaurantName = r.RestaurantName
	}
	if r.RestaurantAddress != "" {
		rec.RestaurantAddress = r.RestaurantAddress
	}
	if r.Name != "" {
		rec.Name = r.Name
	}
	return rec
}

// DeleteEventRequest carries the tenant scope for the tenant keying scheme.
type DeleteEventRequest struct {
	UserID string `json:"userId,omitempty"`
}

type DeleteEventResponse struct {
	Success bool   `json:"success"`
	EventID string `json:"eventId"`
}
