package storage

import (
	"context"
	"encoding/json"

	"tapasbar-cms/cms-svc/internal/domain"
)

const DefaultActionLimit = 100

func (r *PostgresRepository) ListActions(ctx context.Context, limit int) ([]domain.ActionLogEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultActionLimit
	case limit > MaxReviewLimit:
		limit = MaxReviewLimit
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, event_type, entity_id, actor, COALESCE(payload, 'null'::jsonb), created_at
		FROM action_log
		ORDER BY created_at DESC, id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	entries := make([]domain.ActionLogEntry, 0)
	for rows.Next() {
		var (
			e       domain.ActionLogEntry
			payload []byte
		)
		if err := rows.Scan(&e.ID, &e.EventType, &e.EntityID, &e.Actor, &payload, &e.CreatedAt); err != nil {
			return nil, classify(err)
		}
		e.Payload = json.RawMessage(payload)
		entries = append(entries, e)
	}
	return entries, classify(rows.Err())
}
