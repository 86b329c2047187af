package seed

import (
	"context"
	"encoding/json"
	"fmt"

	"tapasbar-cms/cms-svc/internal/content"
	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/cms-svc/internal/storage"
	"tapasbar-cms/logger"
)

const systemActor = "system"

type Store interface {
	CountMenuItems(ctx context.Context) (int, error)
	ClearMenuItems(ctx context.Context) (int64, error)
	InsertMenuItems(ctx context.Context, items []domain.MenuItem) error
	CountContent(ctx context.Context, key string) (int, error)
	PutContent(ctx context.Context, key string, data json.RawMessage, updatedBy string) (*domain.ContentBlock, error)
	CountUsers(ctx context.Context) (int, error)
	CreateUser(ctx context.Context, u *domain.User) error
}

var _ Store = (*storage.PostgresRepository)(nil)

type Hasher interface {
	Hash(password string) (string, error)
}

type Admin struct {
	Username string
	Email    string
	Password string
}

type Seeder struct {
	store  Store
	hasher Hasher
	admin  Admin
}

func NewSeeder(store Store, hasher Hasher, admin Admin) *Seeder {
	return &Seeder{store: store, hasher: hasher, admin: admin}
}

// Report lists which guarded tables were filled and which were left alone.
type Report struct {
	Inserted []string `json:"inserted"`
	Skipped  []string `json:"skipped"`
}

type step struct {
	name  string
	count func(ctx context.Context) (int, error)
	fill  func(ctx context.Context) error
}

func (s *Seeder) steps() []step {
	contentStep := func(key string) step {
		return step{
			name:  key,
			count: func(ctx context.Context) (int, error) { return s.store.CountContent(ctx, key) },
			fill:  func(ctx context.Context) error { return s.putDefault(ctx, key) },
		}
	}
	return []step{
		contentStep(content.KeyDelivery),
		contentStep(content.KeyStandorte),
		contentStep(content.KeyAbout),
		{
			name:  "menu_items",
			count: s.store.CountMenuItems,
			fill: func(ctx context.Context) error {
				items, err := LoadCatalog(CatalogComplete)
				if err != nil {
					return err
				}
				return s.store.InsertMenuItems(ctx, items)
			},
		},
		contentStep(content.KeyHomepage),
		{
			name:  "users",
			count: s.store.CountUsers,
			fill:  s.createAdmin,
		},
	}
}

// Repair fills each guarded table only while it is empty, so repeated runs
// change nothing. Steps are independent statements; the first failure stops
// the run and keeps whatever earlier steps wrote.
func (s *Seeder) Repair(ctx context.Context) (*Report, error) {
	log := logger.GetLogger()
	report := &Report{Inserted: []string{}, Skipped: []string{}}

	for _, st := range s.steps() {
		n, err := st.count(ctx)
		if err != nil {
			return report, fmt.Errorf("seed %s: count: %w", st.name, err)
		}
		if n > 0 {
			log.Debugw("seed step skipped", "step", st.name, "rows", n)
			report.Skipped = append(report.Skipped, st.name)
			continue
		}
		if err := st.fill(ctx); err != nil {
			return report, fmt.Errorf("seed %s: %w", st.name, err)
		}
		log.Infow("seed step inserted", "step", st.name)
		report.Inserted = append(report.Inserted, st.name)
	}
	return report, nil
}

// ImportMenu replaces every menu item with the named catalog.
func (s *Seeder) ImportMenu(ctx context.Context, catalog string) (int, error) {
	items, err := LoadCatalog(catalog)
	if err != nil {
		return 0, err
	}

	removed, err := s.store.ClearMenuItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear menu items: %w", err)
	}
	if err := s.store.InsertMenuItems(ctx, items); err != nil {
		return 0, fmt.Errorf("insert %s catalog: %w", catalog, err)
	}

	logger.GetLogger().Infow("menu imported", "catalog", catalog, "removed", removed, "inserted", len(items))
	return len(items), nil
}

func (s *Seeder) putDefault(ctx context.Context, key string) error {
	data, ok := content.Default(key)
	if !ok {
		return fmt.Errorf("no default content for %s", key)
	}
	_, err := s.store.PutContent(ctx, key, data, systemActor)
	return err
}

func (s *Seeder) createAdmin(ctx context.Context) error {
	if s.admin.Username == "" || s.admin.Password == "" {
		return fmt.Errorf("default admin credentials are not configured")
	}
	hash, err := s.hasher.Hash(s.admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	return s.store.CreateUser(ctx, &domain.User{
		Username:     s.admin.Username,
		Email:        s.admin.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	})
}
