package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/service"
)

type addItemRequest struct {
	RestaurantID string            `json:"restaurant_id" binding:"required"`
	ItemID       string            `json:"item_id" binding:"required"`
	Quantity     int               `json:"quantity"`
	Options      map[string]string `json:"options"`
}

// updateItemRequest without options applies to every variant of the item.
// With options it addresses the single line resolved from them.
type updateItemRequest struct {
	RestaurantID string            `json:"restaurant_id"`
	Quantity     int               `json:"quantity"`
	Options      map[string]string `json:"options"`
}

type removeItemRequest struct {
	RestaurantID string            `json:"restaurant_id"`
	Options      map[string]string `json:"options"`
}

// GetCart renders an empty cart for a missing or unknown session without
// starting one.
// GET /api/v1/cart
func (s *Server) GetCart(c *gin.Context) {
	sessionID, cart := cartFrom(c)
	s.respondCart(c, http.StatusOK, sessionID, cart)
}

// DELETE /api/v1/cart
func (s *Server) ClearCart(c *gin.Context) {
	sessionID, cart := cartFrom(c)

	if cart != nil {
		if err := cart.Clear(); err != nil {
			respondError(c, err)
			return
		}
	}

	s.respondCart(c, http.StatusOK, sessionID, cart)
}

// AddCartItem adds an item with option picks; unpicked groups take their first choice.
// POST /api/v1/cart/items
func (s *Server) AddCartItem(c *gin.Context) {
	sessionID, cart := cartFrom(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := cart.AddItem(c.Request.Context(), req.RestaurantID, req.ItemID, req.Quantity, req.Options); err != nil {
		respondError(c, err)
		return
	}

	s.respondCart(c, http.StatusCreated, sessionID, cart)
}

// PATCH /api/v1/cart/items/:itemId
func (s *Server) UpdateCartItem(c *gin.Context) {
	sessionID, cart := cartFrom(c)
	itemID := c.Param("itemId")

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if cart == nil {
		respondError(c, lineNotFound(itemID))
		return
	}

	if req.Options == nil {
		n, err := cart.UpdateQuantity(itemID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		if n == 0 && req.Quantity > 0 {
			respondError(c, lineNotFound(itemID))
			return
		}
		s.respondCart(c, http.StatusOK, sessionID, cart)
		return
	}

	selected, err := cart.Selection(c.Request.Context(), req.RestaurantID, itemID, req.Options)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Quantity <= 0 {
		removed, err := cart.RemoveLine(itemID, selected)
		if err != nil {
			respondError(c, err)
			return
		}
		if !removed {
			respondError(c, lineNotFound(itemID))
			return
		}
		s.respondCart(c, http.StatusOK, sessionID, cart)
		return
	}

	if err := cart.SetLineQuantity(itemID, selected, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	s.respondCart(c, http.StatusOK, sessionID, cart)
}

// RemoveCartItem removes every variant of the item, or a single line when the
// body carries options. Removing an absent item is not an error.
// DELETE /api/v1/cart/items/:itemId
func (s *Server) RemoveCartItem(c *gin.Context) {
	sessionID, cart := cartFrom(c)
	itemID := c.Param("itemId")

	var req removeItemRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	if cart == nil {
		s.respondCart(c, http.StatusOK, sessionID, nil)
		return
	}

	if req.Options == nil {
		if _, err := cart.RemoveItem(itemID); err != nil {
			respondError(c, err)
			return
		}
		s.respondCart(c, http.StatusOK, sessionID, cart)
		return
	}

	selected, err := cart.Selection(c.Request.Context(), req.RestaurantID, itemID, req.Options)
	if err != nil {
		respondError(c, err)
		return
	}
	if _, err := cart.RemoveLine(itemID, selected); err != nil {
		respondError(c, err)
		return
	}

	s.respondCart(c, http.StatusOK, sessionID, cart)
}

// respondCart renders a nil cart as an empty one.
func (s *Server) respondCart(c *gin.Context, status int, sessionID string, cart *service.CartService) {
	summary := domain.Summarize(domain.NewCart(), domain.Fees{})
	if cart != nil {
		summary = cart.Summary()
	}
	c.JSON(status, toCartView(sessionID, summary, s.currency, s.restaurantNames(c, summary.Groups)))
}

// restaurantNames is best effort; a group whose restaurant cannot be found is
// rendered without a name.
func (s *Server) restaurantNames(c *gin.Context, groups []domain.RestaurantGroup) map[string]string {
	names := make(map[string]string, len(groups))

	for _, g := range groups {
		r, err := s.catalog.FindRestaurant(c.Request.Context(), g.RestaurantID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				log := loggerFrom(c)
				log.Warn().Err(err).Str("restaurant_id", g.RestaurantID).Msg("restaurant lookup failed")
			}
			continue
		}
		names[g.RestaurantID] = r.Name
	}

	return names
}

func lineNotFound(itemID string) error {
	return fmt.Errorf("item[%s] in cart: %w", itemID, domain.ErrNotFound)
}
