package repository

import (
	"github.com/KehindeA533/openai-backend/modules/calendar/entity"
)

// KeyFunc derives the primary store key for a reservation record. Injecting
// it lets callers choose the keying scheme (plain event id, tenant-scoped
// composite) without duplicating the store logic.
type KeyFunc func(rec entity.Reservation) string

// EventIDKey keys records by the provider-issued event id.
func EventIDKey(rec entity.Reservation) string {
	return rec.EventID
}

// TenantKey keys records by userID + sep + eventID. A record without both
// parts derives an empty key, which Save rejects; lookups without the tenant
// part therefore cannot reach another tenant's events.
func TenantKey(sep string) KeyFunc {
	return func(rec entity.Reservation) string {
		if rec.UserID == "" || rec.EventID == "" {
			return ""
		}
		return rec.UserID + sep + rec.EventID
	}
}

// MonthlyEvents buckets records into the previous, current and next calendar
// month. Records whose date does not parse fall into no bucket.
type MonthlyEvents struct {
	PreviousMonth []entity.Reservation `json:"previousMonth"`
	CurrentMonth  []entity.Reservation `json:"currentMonth"`
	NextMonth     []entity.Reservation `json:"nextMonth"`
}

// EventStore maps a provider-issued event identifier to the last-known
// reservation fields so that update and delete calls, which need the
// identifier, can be issued from a human-facing key.
//
// Lookups return nil for a missing or malformed key; they never fail. Save is
// the only operation that can reject its input (empty derived key).
type EventStore interface {
	Save(rec entity.Reservation) error
	Get(key string) *entity.Reservation
	GetByName(name string) *entity.Reservation
	GetIDByName(name string) string
	Remove(key string) bool
	RemoveByName(name string) bool
	All() []entity.Reservation
	ByUser(userID string) []entity.Reservation
	Monthly() MonthlyEvents
}
