package storage

import (
	"context"
	"database/sql"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/google/uuid"
)

const userColumns = `id, username, email, password_hash, role, is_active, created_at, last_login`

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u         domain.User
		role      string
		lastLogin sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.IsActive, &u.CreatedAt, &lastLogin); err != nil {
		return nil, err
	}
	u.Role = domain.Role(role)
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return &u, nil
}

func (r *PostgresRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return nil, classify(err)
	}
	return u, nil
}

func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	u, err := scanUser(r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, classify(err)
	}
	return u, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, username`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, classify(err)
		}
		users = append(users, *u)
	}
	return users, classify(rows.Err())
}

func (r *PostgresRepository) CreateUser(ctx context.Context, u *domain.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	u.ID = uuid.NewString()
	if u.Role == "" {
		u.Role = domain.RoleViewer
	}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.IsActive,
	).Scan(&u.CreatedAt)
	return classify(err)
}

// UpdateUser rewrites profile fields. The stored hash changes only when
// newHash is non-nil.
func (r *PostgresRepository) UpdateUser(ctx context.Context, u *domain.User, newHash *string) error {
	if !validID(u.ID) {
		return domain.ErrNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var hash sql.NullString
	if newHash != nil {
		hash = sql.NullString{String: *newHash, Valid: true}
	}
	updated, err := scanUser(r.DB.QueryRowContext(ctx, `
		UPDATE users SET
			username = $1, email = $2, role = $3, is_active = $4,
			password_hash = COALESCE($5, password_hash)
		WHERE id = $6
		RETURNING `+userColumns,
		u.Username, u.Email, string(u.Role), u.IsActive, hash, u.ID))
	if err != nil {
		return classify(err)
	}
	*u = *updated
	return nil
}

func (r *PostgresRepository) DeleteUser(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return rowsAffected(r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id))
}

func (r *PostgresRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return rowsAffected(r.DB.ExecContext(ctx, `UPDATE users SET last_login = $1 WHERE id = $2`, at, id))
}

func (r *PostgresRepository) CountUsers(ctx context.Context) (int, error) {
	return r.countRows(ctx, `SELECT COUNT(*) FROM users`)
}
