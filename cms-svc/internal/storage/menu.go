package storage

import (
	"context"
	"database/sql"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/google/uuid"
)

const menuColumns = `id, name, description, COALESCE(detailed_description, ''), price, category,
	COALESCE(origin, ''), COALESCE(allergens, ''), COALESCE(additives, ''),
	COALESCE(preparation_method, ''), COALESCE(ingredients, ''),
	vegan, vegetarian, glutenfree, order_index, is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var m domain.MenuItem
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.DetailedDescription, &m.Price, &m.Category,
		&m.Origin, &m.Allergens, &m.Additives, &m.PreparationMethod, &m.Ingredients,
		&m.Vegan, &m.Vegetarian, &m.Glutenfree, &m.OrderIndex, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	item.ID = uuid.NewString()
	item.IsActive = true
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (id, name, description, detailed_description, price, category,
			origin, allergens, additives, preparation_method, ingredients,
			vegan, vegetarian, glutenfree, order_index, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at`,
		item.ID, item.Name, item.Description, nullString(item.DetailedDescription), item.Price, item.Category,
		nullString(item.Origin), nullString(item.Allergens), nullString(item.Additives),
		nullString(item.PreparationMethod), nullString(item.Ingredients),
		item.Vegan, item.Vegetarian, item.Glutenfree, item.OrderIndex, item.IsActive,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	return classify(err)
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, includeInactive bool) ([]domain.MenuItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + menuColumns + ` FROM menu_items`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY order_index, category, name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, classify(err)
		}
		items = append(items, *item)
	}
	return items, classify(rows.Err())
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	item, err := scanMenuItem(r.DB.QueryRowContext(ctx,
		`SELECT `+menuColumns+` FROM menu_items WHERE id = $1`, id))
	if err != nil {
		return nil, classify(err)
	}
	return item, nil
}

// UpdateMenuItem overwrites every editable column of an existing row.
func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if !validID(item.ID) {
		return domain.ErrNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.DB.QueryRowContext(ctx, `
		UPDATE menu_items SET
			name = $1, description = $2, detailed_description = $3, price = $4, category = $5,
			origin = $6, allergens = $7, additives = $8, preparation_method = $9, ingredients = $10,
			vegan = $11, vegetarian = $12, glutenfree = $13, order_index = $14, is_active = $15,
			updated_at = NOW()
		WHERE id = $16
		RETURNING created_at, updated_at`,
		item.Name, item.Description, nullString(item.DetailedDescription), item.Price, item.Category,
		nullString(item.Origin), nullString(item.Allergens), nullString(item.Additives),
		nullString(item.PreparationMethod), nullString(item.Ingredients),
		item.Vegan, item.Vegetarian, item.Glutenfree, item.OrderIndex, item.IsActive,
		item.ID,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	return classify(err)
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return rowsAffected(r.DB.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id))
}

func (r *PostgresRepository) CountMenuItems(ctx context.Context) (int, error) {
	return r.countRows(ctx, `SELECT COUNT(*) FROM menu_items`)
}

func (r *PostgresRepository) ClearMenuItems(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(ctx, `DELETE FROM menu_items`)
	if err != nil {
		return 0, classify(err)
	}
	return res.RowsAffected()
}

// InsertMenuItems writes catalog rows one by one; a failure leaves the rows
// inserted so far in place.
func (r *PostgresRepository) InsertMenuItems(ctx context.Context, items []domain.MenuItem) error {
	for i := range items {
		if err := r.CreateMenuItem(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) countRows(ctx context.Context, query string, args ...any) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var n int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, classify(err)
	}
	return n, nil
}
