package repository

import (
	"sync"
	"time"

	"github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/modules/calendar/entity"
)

const dateLayout = "2006-01-02"

// MemoryStore is the in-memory EventStore. Each operation takes the lock
// once, so a single call is atomic; sequences of calls interleave freely
// across requests, as documented on the controller paths that chain them.
type MemoryStore struct {
	mu        sync.RWMutex
	keyFn     KeyFunc
	events    map[string]entity.Reservation
	nameIndex map[string]string
	now       func() time.Time
}

type Option func(*MemoryStore)

// WithKeyFunc selects the keying scheme. Default is EventIDKey.
func WithKeyFunc(fn KeyFunc) Option {
	return func(s *MemoryStore) {
		s.keyFn = fn
	}
}

// WithNameIndex maintains a secondary name-to-key index so reservations can
// be addressed by the holder's display name.
func WithNameIndex() Option {
	return func(s *MemoryStore) {
		s.nameIndex = make(map[string]string)
	}
}

// WithClock fixes the reference time used by Monthly. Tests use it; the
// default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		keyFn:  EventIDKey,
		events: make(map[string]entity.Reservation),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save upserts rec under its derived key. When the name index is active and
// the record's name changed, the stale index entry is removed in the same
// locked section, so the index never dangles.
func (s *MemoryStore) Save(rec entity.Reservation) error {
	key := s.keyFn(rec)
	if key == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "event key is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nameIndex != nil {
		if existing, ok := s.events[key]; ok && existing.Name != "" && existing.Name != rec.Name {
			delete(s.nameIndex, existing.Name)
		}
		if rec.Name != "" {
			s.nameIndex[rec.Name] = key
		}
	}

	s.events[key] = rec
	return nil
}

func (s *MemoryStore) Get(key string) *entity.Reservation {
	if key == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.events[key]
	if !ok {
		return nil
	}
	return &rec
}

func (s *MemoryStore) GetByName(name string) *entity.Reservation {
	if name == "" || s.nameIndex == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.nameIndex[name]
	if !ok {
		return nil
	}
	rec, ok := s.events[key]
	if !ok {
		return nil
	}
	return &rec
}

func (s *MemoryStore) GetIDByName(name string) string {
	if name == "" || s.nameIndex == nil {
		return ""
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.nameIndex[name]
}

// Remove deletes the record and its index entry and reports whether a record
// existed. Missing keys are a no-op, never a failure.
func (s *MemoryStore) Remove(key string) bool {
	if key == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.events[key]
	if !ok {
		return false
	}
	if s.nameIndex != nil && rec.Name != "" {
		delete(s.nameIndex, rec.Name)
	}
	delete(s.events, key)
	return true
}

func (s *MemoryStore) RemoveByName(name string) bool {
	if name == "" || s.nameIndex == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.nameIndex[name]
	if !ok {
		return false
	}
	delete(s.nameIndex, name)
	delete(s.events, key)
	return true
}

// All returns every record. Order is not meaningful.
func (s *MemoryStore) All() []entity.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Reservation, 0, len(s.events))
	for _, rec := range s.events {
		out = append(out, rec)
	}
	return out
}

// ByUser linearly scans for records owned by userID.
func (s *MemoryStore) ByUser(userID string) []entity.Reservation {
	out := make([]entity.Reservation, 0)
	if userID == "" {
		return out
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.events {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out
}

func (s *MemoryStore) Monthly() MonthlyEvents {
	return bucketByMonth(s.All(), s.now())
}

func bucketByMonth(events []entity.Reservation, now time.Time) MonthlyEvents {
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previous := current.AddDate(0, -1, 0)
	next := current.AddDate(0, 1, 0)

	out := MonthlyEvents{
		PreviousMonth: make([]entity.Reservation, 0),
		CurrentMonth:  make([]entity.Reservation, 0),
		NextMonth:     make([]entity.Reservation, 0),
	}

	for _, rec := range events {
		parsed, err := time.Parse(dateLayout, rec.Date)
		if err != nil {
			// Unparseable dates are excluded from every bucket.
			continue
		}
		switch {
		case sameMonth(parsed, previous):
			out.PreviousMonth = append(out.PreviousMonth, rec)
		case sameMonth(parsed, current):
			out.CurrentMonth = append(out.CurrentMonth, rec)
		case sameMonth(parsed, next):
			out.NextMonth = append(out.NextMonth, rec)
		}
	}
	return out
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
