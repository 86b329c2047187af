package storage

import (
	"context"
	"database/sql"
	"time"

	"tapasbar-cms/notify-svc/internal/domain"
)

const insertTimeout = 5 * time.Second

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// ActionLogDDL is the action_log definition shared with the CMS migrations.
const ActionLogDDL = `CREATE TABLE IF NOT EXISTS action_log (
    id         BIGSERIAL PRIMARY KEY,
    event_type VARCHAR(100) NOT NULL,
    entity_id  TEXT NOT NULL DEFAULT '',
    actor      TEXT NOT NULL DEFAULT '',
    payload    JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// ActionLogUpgrade widens columns of tables created as VARCHAR(100).
const ActionLogUpgrade = `ALTER TABLE action_log ALTER COLUMN entity_id TYPE TEXT, ALTER COLUMN actor TYPE TEXT;`

// EnsureSchema creates the action log when notify-svc starts before the CMS
// service has run its migrations.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range []string{ActionLogDDL, ActionLogUpgrade} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) InsertAction(ctx context.Context, ev domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	var payload any
	if len(ev.Payload) > 0 {
		payload = []byte(ev.Payload)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO action_log (event_type, entity_id, actor, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		ev.Type, ev.EntityID, ev.Actor, payload, ev.Timestamp)
	return err
}
