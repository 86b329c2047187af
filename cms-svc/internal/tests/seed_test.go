package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tapasbar-cms/cms-svc/internal/content"
	"tapasbar-cms/cms-svc/internal/domain"
	"tapasbar-cms/cms-svc/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory seed.Store keyed the way the Postgres
// repository guards its tables.
type memoryStore struct {
	menu    []domain.MenuItem
	content map[string]json.RawMessage
	users   []domain.User
	failOn  string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{content: map[string]json.RawMessage{}}
}

func (s *memoryStore) CountMenuItems(ctx context.Context) (int, error) { return len(s.menu), nil }

func (s *memoryStore) ClearMenuItems(ctx context.Context) (int64, error) {
	n := int64(len(s.menu))
	s.menu = nil
	return n, nil
}

func (s *memoryStore) InsertMenuItems(ctx context.Context, items []domain.MenuItem) error {
	if s.failOn == "menu" {
		return errors.New("insert failed")
	}
	s.menu = append(s.menu, items...)
	return nil
}

func (s *memoryStore) CountContent(ctx context.Context, key string) (int, error) {
	if _, ok := s.content[key]; ok {
		return 1, nil
	}
	return 0, nil
}

func (s *memoryStore) PutContent(ctx context.Context, key string, data json.RawMessage, updatedBy string) (*domain.ContentBlock, error) {
	s.content[key] = data
	return &domain.ContentBlock{Key: key, Data: data, UpdatedBy: updatedBy}, nil
}

func (s *memoryStore) CountUsers(ctx context.Context) (int, error) { return len(s.users), nil }

func (s *memoryStore) CreateUser(ctx context.Context, u *domain.User) error {
	s.users = append(s.users, *u)
	return nil
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func newTestSeeder(store *memoryStore) *seed.Seeder {
	return seed.NewSeeder(store, plainHasher{}, seed.Admin{
		Username: "admin",
		Email:    "admin@jimmys-tapasbar.de",
		Password: "jimmy2024",
	})
}

func TestSeeder_RepairIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	seeder := newTestSeeder(store)

	first, err := seeder.Repair(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		content.KeyDelivery, content.KeyStandorte, content.KeyAbout, "menu_items", content.KeyHomepage, "users",
	}, first.Inserted)
	assert.Empty(t, first.Skipped)

	menuCount := len(store.menu)
	require.Len(t, store.users, 1)
	assert.Equal(t, domain.RoleAdmin, store.users[0].Role)
	assert.Equal(t, "hashed:jimmy2024", store.users[0].PasswordHash)
	assert.True(t, store.users[0].IsActive)

	second, err := seeder.Repair(ctx)
	require.NoError(t, err)
	assert.Empty(t, second.Inserted)
	assert.Len(t, second.Skipped, 6)
	assert.Len(t, store.menu, menuCount)
	assert.Len(t, store.users, 1)
}

func TestSeeder_RepairLeavesExistingData(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	store.content[content.KeyHomepage] = json.RawMessage(`{"custom":true}`)
	store.menu = []domain.MenuItem{{Name: "Hauswein"}}

	report, err := newTestSeeder(store).Repair(ctx)
	require.NoError(t, err)
	assert.Contains(t, report.Skipped, "menu_items")
	assert.Contains(t, report.Skipped, content.KeyHomepage)
	assert.JSONEq(t, `{"custom":true}`, string(store.content[content.KeyHomepage]))
	assert.Len(t, store.menu, 1)
}

func TestSeeder_RepairStopsOnFailure(t *testing.T) {
	store := newMemoryStore()
	store.failOn = "menu"

	report, err := newTestSeeder(store).Repair(context.Background())
	assert.Error(t, err)
	assert.Equal(t, []string{content.KeyDelivery, content.KeyStandorte, content.KeyAbout}, report.Inserted)
	assert.Empty(t, store.users)
}

func TestSeeder_ImportMenuReplaces(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	store.menu = []domain.MenuItem{{Name: "old"}}
	seeder := newTestSeeder(store)

	detailed, err := seed.LoadCatalog(seed.CatalogDetailed)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		n, err := seeder.ImportMenu(ctx, seed.CatalogDetailed)
		require.NoError(t, err)
		assert.Equal(t, len(detailed), n)
		assert.Len(t, store.menu, len(detailed))
	}

	_, err = seeder.ImportMenu(ctx, "brunch")
	assert.Error(t, err)
	assert.Len(t, store.menu, len(detailed))
}

func TestLoadCatalog_Complete(t *testing.T) {
	items, err := seed.LoadCatalog(seed.CatalogComplete)
	require.NoError(t, err)
	assert.Len(t, items, 62)

	categories := map[string]bool{}
	for i, item := range items {
		categories[item.Category] = true
		assert.Equal(t, i+1, item.OrderIndex)
		assert.True(t, item.IsActive)
		assert.NoError(t, item.Validate(), item.Name)
	}
	assert.Len(t, categories, 14)
}

func TestLoadCatalog_ReturnsFreshCopies(t *testing.T) {
	first, err := seed.LoadCatalog(seed.CatalogDetailed)
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := seed.LoadCatalog(seed.CatalogDetailed)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second[0].Name)
}

func TestDeriveDietaryFlags(t *testing.T) {
	tests := []struct {
		name       string
		item       domain.MenuItem
		vegan      bool
		vegetarian bool
	}{
		{name: "vegetarian_tapa", item: domain.MenuItem{Name: "Pimientos de Padrón", Category: "TAPAS VEGETARIAN"}, vegan: true, vegetarian: true},
		{name: "cheese_tapa", item: domain.MenuItem{Name: "Queso Manchego", Category: "TAPAS VEGETARIAN"}, vegan: false, vegetarian: true},
		{name: "pasta", item: domain.MenuItem{Name: "Pasta Frutti di Mare", Category: "PASTA"}, vegan: false, vegetarian: true},
		{name: "named_vegetariana", item: domain.MenuItem{Name: "Pizza Vegetariana", Category: "PIZZA"}, vegan: false, vegetarian: true},
		{name: "meat", item: domain.MenuItem{Name: "Albondigas", Category: "TAPAS DE CARNE", Glutenfree: true}, vegan: false, vegetarian: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			item := testCase.item
			seed.DeriveDietaryFlags(&item)
			assert.Equal(t, testCase.vegan, item.Vegan)
			assert.Equal(t, testCase.vegetarian, item.Vegetarian)
			assert.False(t, item.Glutenfree)
		})
	}
}
