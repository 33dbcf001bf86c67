package catalog

import (
	"strings"

	"github.com/nikolayk812/foodcart/internal/domain"
)

// AllCategories disables category filtering.
const AllCategories = "all"

type Cuisine struct {
	ID   string
	Name string
}

var Cuisines = []Cuisine{
	{ID: AllCategories, Name: "All"},
	{ID: "american", Name: "American"},
	{ID: "italian", Name: "Italian"},
	{ID: "japanese", Name: "Japanese"},
	{ID: "mexican", Name: "Mexican"},
	{ID: "indian", Name: "Indian"},
}

type RestaurantFilter struct {
	Search  string
	Cuisine string
}

type MenuFilter struct {
	Search   string
	Category string
}

// FilterRestaurants matches the search term against name or cuisine and the
// cuisine filter against the cuisine, both case-insensitively.
func FilterRestaurants(rs []domain.Restaurant, f RestaurantFilter) []domain.Restaurant {
	term := strings.ToLower(f.Search)

	var out []domain.Restaurant
	for _, r := range rs {
		if term != "" &&
			!strings.Contains(strings.ToLower(r.Name), term) &&
			!strings.Contains(strings.ToLower(r.Cuisine), term) {
			continue
		}
		if !categoryMatches(f.Cuisine, r.Cuisine) {
			continue
		}
		out = append(out, r)
	}

	return out
}

func Featured(rs []domain.Restaurant) []domain.Restaurant {
	var out []domain.Restaurant
	for _, r := range rs {
		if r.Featured {
			out = append(out, r)
		}
	}
	return out
}

func FilterMenuItems(items []domain.MenuItem, f MenuFilter) []domain.MenuItem {
	term := strings.ToLower(f.Search)

	var out []domain.MenuItem
	for _, item := range items {
		if term != "" &&
			!strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) {
			continue
		}
		if f.Category != "" && f.Category != AllCategories && item.Category != f.Category {
			continue
		}
		out = append(out, item)
	}

	return out
}

// MenuCategories returns "all" followed by the distinct categories in first-seen order.
func MenuCategories(items []domain.MenuItem) []string {
	categories := []string{AllCategories}
	seen := make(map[string]bool)

	for _, item := range items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}

	return categories
}

func categoryMatches(filter, value string) bool {
	if filter == "" || strings.EqualFold(filter, AllCategories) {
		return true
	}
	return strings.EqualFold(filter, value)
}
