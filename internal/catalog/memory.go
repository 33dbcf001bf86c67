// Package catalog provides the in-memory catalog and the browse filters used
// by the storefront listing pages.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/port"
)

type Memory struct {
	mu          sync.RWMutex
	restaurants []domain.Restaurant
	items       []domain.MenuItem
}

var (
	_ port.Catalog       = (*Memory)(nil)
	_ port.CatalogWriter = (*Memory)(nil)
)

func NewMemory(restaurants []domain.Restaurant, items []domain.MenuItem) *Memory {
	m := &Memory{restaurants: slices.Clone(restaurants)}
	for _, item := range items {
		m.items = append(m.items, item.Clone())
	}
	return m
}

// NewSeeded returns a catalog holding the built-in storefront data.
func NewSeeded() *Memory {
	return NewMemory(SeedRestaurants(), SeedMenuItems())
}

func (m *Memory) ListRestaurants(_ context.Context) ([]domain.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.restaurants), nil
}

func (m *Memory) FindRestaurant(_ context.Context, id string) (domain.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.restaurants {
		if r.ID == id {
			return r, nil
		}
	}

	return domain.Restaurant{}, fmt.Errorf("restaurant[%s]: %w", id, domain.ErrNotFound)
}

func (m *Memory) FindMenuItem(_ context.Context, restaurantID, itemID string) (domain.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, item := range m.items {
		if item.RestaurantID == restaurantID && item.ID == itemID {
			return item.Clone(), nil
		}
	}

	return domain.MenuItem{}, fmt.Errorf("menu item[%s/%s]: %w", restaurantID, itemID, domain.ErrNotFound)
}

func (m *Memory) ListMenuItems(_ context.Context, restaurantID string) ([]domain.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []domain.MenuItem
	for _, item := range m.items {
		if item.RestaurantID == restaurantID {
			items = append(items, item.Clone())
		}
	}

	return items, nil
}

func (m *Memory) UpsertRestaurant(_ context.Context, r domain.Restaurant) error {
	if r.ID == "" {
		return fmt.Errorf("restaurant id is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i := slices.IndexFunc(m.restaurants, func(x domain.Restaurant) bool { return x.ID == r.ID }); i >= 0 {
		m.restaurants[i] = r
		return nil
	}
	m.restaurants = append(m.restaurants, r)

	return nil
}

// UpsertMenuItem stores the item. The position is ignored: memory keeps insertion order.
func (m *Memory) UpsertMenuItem(_ context.Context, item domain.MenuItem, _ int) error {
	if item.ID == "" || item.RestaurantID == "" {
		return fmt.Errorf("menu item id or restaurant id is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.items, func(x domain.MenuItem) bool {
		return x.RestaurantID == item.RestaurantID && x.ID == item.ID
	})
	if i >= 0 {
		m.items[i] = item.Clone()
		return nil
	}
	m.items = append(m.items, item.Clone())

	return nil
}
