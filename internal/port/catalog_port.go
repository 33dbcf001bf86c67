package port

import (
	"context"

	"github.com/nikolayk812/foodcart/internal/domain"
)

// Catalog resolves restaurants and menu items. Lookups of unknown ids return
// an error wrapping domain.ErrNotFound.
type Catalog interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	FindRestaurant(ctx context.Context, id string) (domain.Restaurant, error)
	FindMenuItem(ctx context.Context, restaurantID, itemID string) (domain.MenuItem, error)
	ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error)
}

type CatalogWriter interface {
	UpsertRestaurant(ctx context.Context, r domain.Restaurant) error
	UpsertMenuItem(ctx context.Context, item domain.MenuItem, position int) error
}

type CatalogStore interface {
	Catalog
	CatalogWriter
}
