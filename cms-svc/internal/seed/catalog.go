package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"tapasbar-cms/cms-svc/internal/domain"
)

//go:embed catalogs/*.json
var catalogFS embed.FS

const (
	CatalogComplete = "complete"
	CatalogDetailed = "detailed"
)

// LoadCatalog returns a fresh copy of a built-in menu with order_index set
// from 1 in file order. The complete catalog has its dietary flags derived
// from category and name; the detailed one carries explicit flags.
func LoadCatalog(name string) ([]domain.MenuItem, error) {
	if name != CatalogComplete && name != CatalogDetailed {
		return nil, fmt.Errorf("unknown catalog %q (want %s or %s)", name, CatalogComplete, CatalogDetailed)
	}
	raw, err := catalogFS.ReadFile("catalogs/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", name, err)
	}
	for i := range items {
		if name == CatalogComplete {
			DeriveDietaryFlags(&items[i])
		}
		items[i].OrderIndex = i + 1
		items[i].IsActive = true
	}
	return items, nil
}

// DeriveDietaryFlags applies the category rules used for the complete menu.
func DeriveDietaryFlags(item *domain.MenuItem) {
	item.Vegan = item.Category == "TAPAS VEGETARIAN" &&
		!strings.Contains(item.Name, "Queso") &&
		!strings.Contains(item.Name, "Jamón")
	item.Vegetarian = item.Category == "TAPAS VEGETARIAN" ||
		item.Category == "PASTA" ||
		strings.Contains(item.Name, "Vegetariana")
	item.Glutenfree = false
}
