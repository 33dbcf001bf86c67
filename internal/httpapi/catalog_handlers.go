package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/foodcart/internal/catalog"
)

// ListCuisines returns the values accepted by the restaurant category filter.
// GET /api/v1/cuisines
func (s *Server) ListCuisines(c *gin.Context) {
	type cuisineView struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	out := make([]cuisineView, 0, len(catalog.Cuisines))
	for _, cu := range catalog.Cuisines {
		out = append(out, cuisineView{ID: cu.ID, Name: cu.Name})
	}

	c.JSON(http.StatusOK, gin.H{"cuisines": out})
}

// ListRestaurants filters by free-text search and cuisine.
// GET /api/v1/restaurants?search=&category=
func (s *Server) ListRestaurants(c *gin.Context) {
	rs, err := s.catalog.ListRestaurants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	rs = catalog.FilterRestaurants(rs, catalog.RestaurantFilter{
		Search:  c.Query("search"),
		Cuisine: c.Query("category"),
	})

	c.JSON(http.StatusOK, gin.H{
		"restaurants": toRestaurantViews(rs),
		"count":       len(rs),
	})
}

// GET /api/v1/restaurants/featured
func (s *Server) FeaturedRestaurants(c *gin.Context) {
	rs, err := s.catalog.ListRestaurants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": toRestaurantViews(catalog.Featured(rs))})
}

// GET /api/v1/restaurants/:id
func (s *Server) GetRestaurant(c *gin.Context) {
	r, err := s.catalog.FindRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRestaurantView(r))
}

// ListMenu returns the filtered menu and the categories of the whole menu.
// GET /api/v1/restaurants/:id/menu?search=&category=
func (s *Server) ListMenu(c *gin.Context) {
	ctx := c.Request.Context()
	restaurantID := c.Param("id")

	if _, err := s.catalog.FindRestaurant(ctx, restaurantID); err != nil {
		respondError(c, err)
		return
	}

	items, err := s.catalog.ListMenuItems(ctx, restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}

	filtered := catalog.FilterMenuItems(items, catalog.MenuFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})

	c.JSON(http.StatusOK, gin.H{
		"items":      toMenuItemViews(filtered),
		"categories": catalog.MenuCategories(items),
	})
}

// GET /api/v1/restaurants/:id/menu/:itemId
func (s *Server) GetMenuItem(c *gin.Context) {
	item, err := s.catalog.FindMenuItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMenuItemView(item))
}
