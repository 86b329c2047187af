package storage

import (
	"context"
	"encoding/json"

	"tapasbar-cms/cms-svc/internal/domain"
)

// Blocks with a dedicated table keep a single row under this section name.
const defaultSection = "default"

var dedicatedTables = map[string]string{
	"homepage":           "homepage_content",
	"standorte-enhanced": "standorte_enhanced",
	"ueber-uns-enhanced": "about_content",
	"delivery-info":      "delivery_info",
}

func contentLocation(key string) (table, section string, dedicated bool) {
	if t, ok := dedicatedTables[key]; ok {
		return t, defaultSection, true
	}
	return "content_blocks", key, false
}

func (r *PostgresRepository) GetContent(ctx context.Context, key string) (*domain.ContentBlock, error) {
	table, section, _ := contentLocation(key)
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	block := &domain.ContentBlock{Key: key}
	var data []byte
	err := r.DB.QueryRowContext(ctx,
		`SELECT data, updated_at, updated_by FROM `+table+` WHERE section = $1`, section,
	).Scan(&data, &block.UpdatedAt, &block.UpdatedBy)
	if err != nil {
		return nil, classify(err)
	}
	block.Data = json.RawMessage(data)
	return block, nil
}

// PutContent upserts a block and returns the stored row.
func (r *PostgresRepository) PutContent(ctx context.Context, key string, data json.RawMessage, updatedBy string) (*domain.ContentBlock, error) {
	table, section, _ := contentLocation(key)
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	block := &domain.ContentBlock{Key: key, Data: data, UpdatedBy: updatedBy}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO `+table+` (section, data, updated_at, updated_by)
		VALUES ($1, $2, NOW(), $3)
		ON CONFLICT (section) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by
		RETURNING updated_at`,
		section, []byte(data), updatedBy,
	).Scan(&block.UpdatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return block, nil
}

// CountContent counts the rows guarding a block: the whole table for blocks
// with a dedicated table, the matching section otherwise.
func (r *PostgresRepository) CountContent(ctx context.Context, key string) (int, error) {
	table, section, dedicated := contentLocation(key)
	if dedicated {
		return r.countRows(ctx, `SELECT COUNT(*) FROM `+table)
	}
	return r.countRows(ctx, `SELECT COUNT(*) FROM `+table+` WHERE section = $1`, section)
}
