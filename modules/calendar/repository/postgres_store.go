package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/KehindeA533/openai-backend/core/database"
	"github.com/KehindeA533/openai-backend/core/errors"
	"github.com/KehindeA533/openai-backend/core/logger"
	"github.com/KehindeA533/openai-backend/modules/calendar/entity"
)

const createReservationsTable = `
CREATE TABLE IF NOT EXISTS reservation_events (
	store_key          TEXT PRIMARY KEY,
	event_id           TEXT NOT NULL,
	date               TEXT NOT NULL DEFAULT '',
	time               TEXT NOT NULL DEFAULT '',
	party_size         INT  NOT NULL DEFAULT 0,
	email              TEXT NOT NULL DEFAULT '',
	restaurant_name    TEXT NOT NULL DEFAULT '',
	restaurant_address TEXT NOT NULL DEFAULT '',
	name               TEXT NOT NULL DEFAULT '',
	user_id            TEXT NOT NULL DEFAULT ''
)`

type storedReservation struct {
	StoreKey string `db:"store_key"`
	entity.Reservation
}

// PostgresStore persists reservation records across restarts. It honors the
// same lookup contract as MemoryStore: reads return nil on miss, and a read
// that fails at the database is logged and reported as a miss rather than
// surfaced, since callers treat the store as a cache of provider state.
type PostgresStore struct {
	db    database.IDatabase
	keyFn KeyFunc
	now   func() time.Time
}

type PostgresOption func(*PostgresStore)

func WithPostgresKeyFunc(fn KeyFunc) PostgresOption {
	return func(s *PostgresStore) {
		s.keyFn = fn
	}
}

func WithPostgresClock(now func() time.Time) PostgresOption {
	return func(s *PostgresStore) {
		s.now = now
	}
}

func NewPostgresStore(db database.IDatabase, opts ...PostgresOption) (*PostgresStore, error) {
	s := &PostgresStore{
		db:    db,
		keyFn: EventIDKey,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := db.ExecContext(context.Background(), createReservationsTable); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) Save(rec entity.Reservation) error {
	key := s.keyFn(rec)
	if key == "" {
		return errors.NewAppError(errors.ErrInvalidInput, "event key is required", nil)
	}

	query := `
		INSERT INTO reservation_events
			(store_key, event_id, date, time, party_size, email, restaurant_name, restaurant_address, name, user_id)
		VALUES (:store_key, :event_id, :date, :time, :party_size, :email, :restaurant_name, :restaurant_address, :name, :user_id)
		ON CONFLICT (store_key) DO UPDATE SET
			event_id = EXCLUDED.event_id,
			date = EXCLUDED.date,
			time = EXCLUDED.time,
			party_size = EXCLUDED.party_size,
			email = EXCLUDED.email,
			restaurant_name = EXCLUDED.restaurant_name,
			restaurant_address = EXCLUDED.restaurant_address,
			name = EXCLUDED.name,
			user_id = EXCLUDED.user_id`

	_, err := s.db.NamedExecContext(context.Background(), query, storedReservation{
		StoreKey:    key,
		Reservation: rec,
	})
	return err
}

func (s *PostgresStore) Get(key string) *entity.Reservation {
	if key == "" {
		return nil
	}
	return s.getWhere(`store_key = $1`, key)
}

func (s *PostgresStore) GetByName(name string) *entity.Reservation {
	if name == "" {
		return nil
	}
	return s.getWhere(`name = $1`, name)
}

func (s *PostgresStore) GetIDByName(name string) string {
	rec := s.GetByName(name)
	if rec == nil {
		return ""
	}
	return rec.EventID
}

func (s *PostgresStore) Remove(key string) bool {
	if key == "" {
		return false
	}
	return s.removeWhere(`store_key = $1`, key)
}

func (s *PostgresStore) RemoveByName(name string) bool {
	if name == "" {
		return false
	}
	return s.removeWhere(`name = $1`, name)
}

func (s *PostgresStore) All() []entity.Reservation {
	return s.selectWhere(``)
}

func (s *PostgresStore) ByUser(userID string) []entity.Reservation {
	if userID == "" {
		return make([]entity.Reservation, 0)
	}
	return s.selectWhere(`WHERE user_id = $1`, userID)
}

func (s *PostgresStore) Monthly() MonthlyEvents {
	return bucketByMonth(s.All(), s.now())
}

func (s *PostgresStore) getWhere(where string, arg any) *entity.Reservation {
	var rec entity.Reservation
	query := `
		SELECT event_id, date, time, party_size, email, restaurant_name, restaurant_address, name, user_id
		FROM reservation_events WHERE ` + where + ` LIMIT 1`
	err := s.db.GetContext(context.Background(), &rec, query, arg)
	if err != nil {
		if !stderrors.Is(err, sql.ErrNoRows) {
			logger.Error("PostgresStore:get failed", "error", err)
		}
		return nil
	}
	return &rec
}

func (s *PostgresStore) removeWhere(where string, arg any) bool {
	var removed int
	query := `
		WITH deleted AS (DELETE FROM reservation_events WHERE ` + where + ` RETURNING 1)
		SELECT COUNT(*) FROM deleted`
	if err := s.db.GetContext(context.Background(), &removed, query, arg); err != nil {
		logger.Error("PostgresStore:remove failed", "error", err)
		return false
	}
	return removed > 0
}

func (s *PostgresStore) selectWhere(where string, args ...any) []entity.Reservation {
	recs := make([]entity.Reservation, 0)
	query := `
		SELECT event_id, date, time, party_size, email, restaurant_name, restaurant_address, name, user_id
		FROM reservation_events ` + where
	if err := s.db.SelectContext(context.Background(), &recs, query, args...); err != nil {
		logger.Error("PostgresStore:select failed", "error", err)
		return make([]entity.Reservation, 0)
	}
	return recs
}
