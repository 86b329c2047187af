package storage

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"sort"
	"time"

	"tapasbar-cms/cms-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const defaultQueryTimeout = 5 * time.Second

type PostgresRepository struct {
	DB      *sql.DB
	Timeout time.Duration
}

func NewPostgresRepository(db *sql.DB, timeout time.Duration) *PostgresRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &PostgresRepository{DB: db, Timeout: timeout}
}

// EnsureSchema applies the embedded migrations in file order. Every statement
// is idempotent, so running it on each start is safe.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		stmt, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := r.DB.ExecContext(ctx, string(stmt)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, classify(err))
		}
	}
	return nil
}

func (r *PostgresRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return classify(r.DB.PingContext(ctx))
}

func (r *PostgresRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.Timeout)
}

// classify maps driver errors onto the domain sentinels.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23505":
			return fmt.Errorf("%w: %s", domain.ErrDuplicateKey, pqErr.Constraint)
		case pqErr.Code.Class() == "08", pqErr.Code.Class() == "57":
			return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
		}
		return err
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return err
}

// rowsAffected turns a zero-row write into ErrNotFound.
func rowsAffected(res sql.Result, err error) error {
	if err != nil {
		return classify(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Ids are UUID columns; anything unparsable cannot exist.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
