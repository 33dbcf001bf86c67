package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/foodcart/internal/db"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/port"
	"github.com/shopspring/decimal"
)

type catalogRepository struct {
	q *db.Queries
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogStore {
	return &catalogRepository{q: db.New(pool)}
}

func NewCatalogWithTx(tx pgx.Tx) port.CatalogStore {
	return &catalogRepository{q: db.New(tx)}
}

func (r *catalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.q.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListRestaurants: %w", err)
	}

	restaurants := make([]domain.Restaurant, 0, len(rows))
	for _, row := range rows {
		restaurants = append(restaurants, mapRestaurantToDomain(row))
	}

	return restaurants, nil
}

func (r *catalogRepository) FindRestaurant(ctx context.Context, id string) (domain.Restaurant, error) {
	if id == "" {
		return domain.Restaurant{}, fmt.Errorf("restaurantID is empty")
	}

	row, err := r.q.GetRestaurant(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Restaurant{}, fmt.Errorf("restaurant[%s]: %w", id, domain.ErrNotFound)
		}
		return domain.Restaurant{}, fmt.Errorf("q.GetRestaurant: %w", err)
	}

	return mapRestaurantToDomain(row), nil
}

func (r *catalogRepository) FindMenuItem(ctx context.Context, restaurantID, itemID string) (domain.MenuItem, error) {
	if restaurantID == "" || itemID == "" {
		return domain.MenuItem{}, fmt.Errorf("restaurantID or itemID is empty")
	}

	row, err := r.q.GetMenuItem(ctx, db.GetMenuItemParams{RestaurantID: restaurantID, ID: itemID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.MenuItem{}, fmt.Errorf("menu item[%s/%s]: %w", restaurantID, itemID, domain.ErrNotFound)
		}
		return domain.MenuItem{}, fmt.Errorf("q.GetMenuItem: %w", err)
	}

	item, err := mapMenuItemRowToDomain(db.ListMenuItemsRow(row))
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("mapMenuItemRowToDomain: %w", err)
	}

	return item, nil
}

func (r *catalogRepository) ListMenuItems(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	if restaurantID == "" {
		return nil, fmt.Errorf("restaurantID is empty")
	}

	rows, err := r.q.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("q.ListMenuItems: %w", err)
	}

	items, err := mapMenuItemRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapMenuItemRowsToDomain: %w", err)
	}

	return items, nil
}

func (r *catalogRepository) UpsertRestaurant(ctx context.Context, rest domain.Restaurant) error {
	if rest.ID == "" {
		return fmt.Errorf("restaurant id is empty")
	}

	err := r.q.UpsertRestaurant(ctx, db.UpsertRestaurantParams{
		ID:           rest.ID,
		Name:         rest.Name,
		Image:        rest.Image,
		Cuisine:      rest.Cuisine,
		Rating:       rest.Rating,
		DeliveryTime: rest.DeliveryTime,
		DeliveryFee:  rest.DeliveryFee,
		Featured:     rest.Featured,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertRestaurant: %w", err)
	}

	return nil
}

func (r *catalogRepository) UpsertMenuItem(ctx context.Context, item domain.MenuItem, position int) error {
	if item.ID == "" || item.RestaurantID == "" {
		return fmt.Errorf("menu item id or restaurant id is empty")
	}

	options, err := json.Marshal(mapOptionGroupsFromDomain(item.Options))
	if err != nil {
		return fmt.Errorf("json.Marshal options: %w", err)
	}

	err = r.q.UpsertMenuItem(ctx, db.UpsertMenuItemParams{
		RestaurantID: item.RestaurantID,
		ID:           item.ID,
		Position:     int32(position),
		Name:         item.Name,
		Description:  item.Description,
		Image:        item.Image,
		Category:     item.Category,
		Price:        item.Price,
		Popular:      item.Popular,
		Options:      options,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertMenuItem: %w", err)
	}

	return nil
}

// SeedCatalog upserts the restaurants and then the menu items in a single
// transaction. Items are positioned in slice order. Running it again updates
// the rows in place.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, restaurants []domain.Restaurant, items []domain.MenuItem) error {
	if pool == nil {
		return fmt.Errorf("pool is nil")
	}

	_, err := withTx(ctx, pool, db.New(pool), func(q *db.Queries) (struct{}, error) {
		store := &catalogRepository{q: q}

		for _, r := range restaurants {
			if err := store.UpsertRestaurant(ctx, r); err != nil {
				return struct{}{}, fmt.Errorf("restaurant[%s]: %w", r.ID, err)
			}
		}

		for i, item := range items {
			if err := store.UpsertMenuItem(ctx, item, i); err != nil {
				return struct{}{}, fmt.Errorf("menu item[%s/%s]: %w", item.RestaurantID, item.ID, err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

type optionGroupRecord struct {
	Name    string         `json:"name"`
	Choices []choiceRecord `json:"choices"`
}

type choiceRecord struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func mapRestaurantToDomain(row db.Restaurant) domain.Restaurant {
	return domain.Restaurant{
		ID:           row.ID,
		Name:         row.Name,
		Image:        row.Image,
		Cuisine:      row.Cuisine,
		Rating:       row.Rating,
		DeliveryTime: row.DeliveryTime,
		DeliveryFee:  row.DeliveryFee,
		Featured:     row.Featured,
	}
}

func mapMenuItemRowToDomain(row db.ListMenuItemsRow) (domain.MenuItem, error) {
	var groups []optionGroupRecord
	if err := json.Unmarshal(row.Options, &groups); err != nil {
		return domain.MenuItem{}, fmt.Errorf("options of item[%s] are not valid: %w", row.ID, err)
	}

	return domain.MenuItem{
		ID:           row.ID,
		RestaurantID: row.RestaurantID,
		Name:         row.Name,
		Description:  row.Description,
		Image:        row.Image,
		Category:     row.Category,
		Price:        row.Price,
		Popular:      row.Popular,
		Options:      mapOptionGroupsToDomain(groups),
	}, nil
}

func mapMenuItemRowsToDomain(rows []db.ListMenuItemsRow) ([]domain.MenuItem, error) {
	var items []domain.MenuItem

	for _, row := range rows {
		item, err := mapMenuItemRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapMenuItemRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

func mapOptionGroupsFromDomain(groups []domain.OptionGroup) []optionGroupRecord {
	records := make([]optionGroupRecord, 0, len(groups))
	for _, g := range groups {
		rec := optionGroupRecord{Name: g.Name, Choices: make([]choiceRecord, 0, len(g.Choices))}
		for _, c := range g.Choices {
			rec.Choices = append(rec.Choices, choiceRecord{ID: c.ID, Name: c.Name, Price: c.Price})
		}
		records = append(records, rec)
	}
	return records
}

func mapOptionGroupsToDomain(records []optionGroupRecord) []domain.OptionGroup {
	if len(records) == 0 {
		return nil
	}

	groups := make([]domain.OptionGroup, 0, len(records))
	for _, rec := range records {
		g := domain.OptionGroup{Name: rec.Name}
		for _, c := range rec.Choices {
			g.Choices = append(g.Choices, domain.Choice{ID: c.ID, Name: c.Name, Price: c.Price})
		}
		groups = append(groups, g)
	}
	return groups
}
