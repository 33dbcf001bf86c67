package httpapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/foodcart/internal/catalog"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/httpapi"
	"github.com/nikolayk812/foodcart/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

type cartResponse struct {
	SessionID string `json:"session_id"`
	Groups    []struct {
		RestaurantID   string `json:"restaurant_id"`
		RestaurantName string `json:"restaurant_name"`
		Lines          []struct {
			ItemID    string `json:"item_id"`
			Quantity  int    `json:"quantity"`
			LineTotal string `json:"line_total"`
		} `json:"lines"`
	} `json:"groups"`
	ItemCount   int    `json:"item_count"`
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"delivery_fee"`
	ServiceFee  string `json:"service_fee"`
	GrandTotal  string `json:"grand_total"`
}

type checkoutResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Order  struct {
		Number     string `json:"number"`
		GrandTotal string `json:"grand_total"`
		Currency   string `json:"currency"`
	} `json:"order"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func setupRouter(t *testing.T) (*gin.Engine, *service.Sessions) {
	t.Helper()

	menu := catalog.NewSeeded()
	sessions := service.NewSessions(func() *service.CartService {
		return service.NewCartService(menu, nil, domain.DefaultFees(), zerolog.Nop())
	})
	checkout := service.NewCheckoutService(nil, currency.USD, zerolog.Nop())

	server := httpapi.NewServer(menu, sessions, checkout, currency.USD, zerolog.Nop())

	return server.Router(gin.TestMode), sessions
}

func do(t *testing.T, router *gin.Engine, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set(httpapi.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRestaurants(t *testing.T) {
	router, _ := setupRouter(t)

	type listResponse struct {
		Restaurants []struct {
			ID          string `json:"id"`
			DeliveryFee string `json:"delivery_fee"`
		} `json:"restaurants"`
	}

	tests := []struct {
		name    string
		path    string
		wantIDs []string
	}{
		{
			name:    "all restaurants: ok",
			path:    "/api/v1/restaurants",
			wantIDs: []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:    "by cuisine: ok",
			path:    "/api/v1/restaurants?category=italian",
			wantIDs: []string{"2", "5"},
		},
		{
			name:    "by search term: ok",
			path:    "/api/v1/restaurants?search=sushi",
			wantIDs: []string{"3"},
		},
		{
			name:    "featured: ok",
			path:    "/api/v1/restaurants/featured",
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "no match: ok",
			path:    "/api/v1/restaurants?search=zzz",
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodGet, tt.path, "", nil)
			require.Equal(t, http.StatusOK, w.Code)

			resp := decode[listResponse](t, w)

			var ids []string
			for _, r := range resp.Restaurants {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRestaurantAndMenu(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/restaurants/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"delivery_fee":"2.99"`)

	w = do(t, router, http.MethodGet, "/api/v1/restaurants/99", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/restaurants/99/menu", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	type menuResponse struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Categories []string `json:"categories"`
	}

	w = do(t, router, http.MethodGet, "/api/v1/restaurants/2/menu?search=supreme", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	menu := decode[menuResponse](t, w)
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "p3", menu.Items[0].ID)
	assert.Equal(t, []string{"all", "Pizzas"}, menu.Categories)

	w = do(t, router, http.MethodGet, "/api/v1/restaurants/1/menu/b1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":"9.99"`)
	assert.Contains(t, w.Body.String(), `"name":"Double Patty"`)

	w = do(t, router, http.MethodGet, "/api/v1/restaurants/2/menu/b1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCart_Flow(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/cart", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(httpapi.SessionHeader))

	empty := decode[cartResponse](t, w)
	assert.Empty(t, empty.SessionID)
	assert.Empty(t, empty.Groups)
	assert.Equal(t, "0.00", empty.GrandTotal)
	assert.Equal(t, "0.00", empty.DeliveryFee)

	w = do(t, router, http.MethodPost, "/api/v1/cart/items", "", map[string]any{
		"restaurant_id": "1",
		"item_id":       "b1",
		"quantity":      1,
		"options":       map[string]string{"Size": "s1", "Sides": "side1"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	sessionID := w.Header().Get(httpapi.SessionHeader)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, sessionID, decode[cartResponse](t, w).SessionID)

	w = do(t, router, http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{
		"restaurant_id": "2",
		"item_id":       "p1",
		"quantity":      1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	cart := decode[cartResponse](t, w)
	require.Len(t, cart.Groups, 2)
	assert.Equal(t, "Burger Palace", cart.Groups[0].RestaurantName)
	assert.Equal(t, "Pizza Heaven", cart.Groups[1].RestaurantName)
	assert.Equal(t, 2, cart.ItemCount)
	assert.Equal(t, "25.97", cart.Subtotal)
	assert.Equal(t, "3.99", cart.DeliveryFee)
	assert.Equal(t, "1.99", cart.ServiceFee)
	assert.Equal(t, "31.95", cart.GrandTotal)

	// a second variant of b1, then address only that line
	w = do(t, router, http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{
		"restaurant_id": "1",
		"item_id":       "b1",
		"quantity":      1,
		"options":       map[string]string{"Size": "s2"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPatch, "/api/v1/cart/items/b1", sessionID, map[string]any{
		"restaurant_id": "1",
		"quantity":      3,
		"options":       map[string]string{"Size": "s2"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[cartResponse](t, w).ItemCount)

	w = do(t, router, http.MethodPatch, "/api/v1/cart/items/b1", sessionID, map[string]any{"quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[cartResponse](t, w).ItemCount)

	w = do(t, router, http.MethodDelete, "/api/v1/cart/items/b1", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart = decode[cartResponse](t, w)
	require.Len(t, cart.Groups, 1)
	assert.Equal(t, "2", cart.Groups[0].RestaurantID)

	w = do(t, router, http.MethodDelete, "/api/v1/cart", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decode[cartResponse](t, w).ItemCount)
}

func TestCart_Errors(t *testing.T) {
	router, _ := setupRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{
			name:       "unknown item: not found",
			method:     http.MethodPost,
			path:       "/api/v1/cart/items",
			body:       map[string]any{"restaurant_id": "1", "item_id": "zz", "quantity": 1},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "zero quantity: bad request",
			method:     http.MethodPost,
			path:       "/api/v1/cart/items",
			body:       map[string]any{"restaurant_id": "1", "item_id": "b1", "quantity": 0},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown option: bad request",
			method:     http.MethodPost,
			path:       "/api/v1/cart/items",
			body:       map[string]any{"restaurant_id": "1", "item_id": "b1", "quantity": 1, "options": map[string]string{"Size": "xxl"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing item id: bad request",
			method:     http.MethodPost,
			path:       "/api/v1/cart/items",
			body:       map[string]any{"restaurant_id": "1", "quantity": 1},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "update absent item: not found",
			method:     http.MethodPatch,
			path:       "/api/v1/cart/items/b1",
			body:       map[string]any{"quantity": 2},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "remove absent item: ok",
			method:     http.MethodDelete,
			path:       "/api/v1/cart/items/b1",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, "", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus >= 400 {
				assert.NotEmpty(t, decode[errorResponse](t, w).Error)
			}
		})
	}
}

func TestCheckout_Flow(t *testing.T) {
	router, _ := setupRouter(t)

	details := map[string]any{
		"full_name":      "Jane Doe",
		"phone":          "555-0100",
		"street_address": "1 Main St",
		"city":           "Springfield",
		"state":          "IL",
		"zip":            "62701",
		"payment_method": "card",
	}

	w := do(t, router, http.MethodPost, "/api/v1/checkout", "", details)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/cart/items", "", map[string]any{
		"restaurant_id": "1",
		"item_id":       "b1",
		"quantity":      1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := w.Header().Get(httpapi.SessionHeader)

	invalid := map[string]any{"full_name": "Jane Doe", "payment_method": "card"}
	w = do(t, router, http.MethodPost, "/api/v1/checkout", sessionID, invalid)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// failed payment keeps the cart
	w = do(t, router, http.MethodPost, "/api/v1/checkout", sessionID, details)
	require.Equal(t, http.StatusCreated, w.Code)
	failed := decode[checkoutResponse](t, w)
	assert.Equal(t, "pending", failed.Status)

	w = do(t, router, http.MethodPost, "/api/v1/checkout/"+failed.ID+"/confirm", "", map[string]any{"success": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "failed", decode[checkoutResponse](t, w).Status)

	w = do(t, router, http.MethodGet, "/api/v1/cart", sessionID, nil)
	assert.Equal(t, 1, decode[cartResponse](t, w).ItemCount)

	// successful payment clears it
	w = do(t, router, http.MethodPost, "/api/v1/checkout", sessionID, details)
	require.Equal(t, http.StatusCreated, w.Code)
	submitted := decode[checkoutResponse](t, w)
	assert.Equal(t, "18.96", submitted.Order.GrandTotal)
	assert.Equal(t, "USD", submitted.Order.Currency)

	w = do(t, router, http.MethodPost, "/api/v1/checkout/"+submitted.ID+"/confirm", "", map[string]any{"success": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "committed", decode[checkoutResponse](t, w).Status)

	w = do(t, router, http.MethodPost, "/api/v1/checkout/"+submitted.ID+"/confirm", "", map[string]any{"success": true})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/cart", sessionID, nil)
	assert.Zero(t, decode[cartResponse](t, w).ItemCount)

	w = do(t, router, http.MethodGet, "/api/v1/orders/"+submitted.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), submitted.Order.Number)

	w = do(t, router, http.MethodGet, "/api/v1/orders/"+failed.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/orders/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/checkout/"+submitted.ID+"/confirm", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessions_OnlyAddingStartsASession(t *testing.T) {
	router, sessions := setupRouter(t)

	for range 100 {
		w := do(t, router, http.MethodGet, "/api/v1/cart", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	unknown := "3f1c2a8e-0000-4000-8000-000000000000"
	requests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/v1/cart", nil},
		{http.MethodDelete, "/api/v1/cart", nil},
		{http.MethodDelete, "/api/v1/cart/items/b1", nil},
		{http.MethodPatch, "/api/v1/cart/items/b1", map[string]any{"quantity": 1}},
		{http.MethodPost, "/api/v1/checkout", map[string]any{"full_name": "Jane Doe"}},
	}
	for _, r := range requests {
		do(t, router, r.method, r.path, "", r.body)
		do(t, router, r.method, r.path, unknown, r.body)
	}

	assert.Zero(t, sessions.Len())

	w := do(t, router, http.MethodPost, "/api/v1/cart/items", "", map[string]any{
		"restaurant_id": "1",
		"item_id":       "b1",
		"quantity":      1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := w.Header().Get(httpapi.SessionHeader)
	assert.Equal(t, 1, sessions.Len())

	w = do(t, router, http.MethodGet, "/api/v1/cart", sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessionID, w.Header().Get(httpapi.SessionHeader))
	assert.Equal(t, 1, decode[cartResponse](t, w).ItemCount)
	assert.Equal(t, 1, sessions.Len())
}

func TestCheckout_CartChangedConflict(t *testing.T) {
	router, _ := setupRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/cart/items", "", map[string]any{
		"restaurant_id": "1",
		"item_id":       "b1",
		"quantity":      1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := w.Header().Get(httpapi.SessionHeader)

	details := map[string]any{
		"full_name":      "Jane Doe",
		"phone":          "555-0100",
		"street_address": "1 Main St",
		"city":           "Springfield",
		"state":          "IL",
		"zip":            "62701",
		"payment_method": "cash",
	}

	w = do(t, router, http.MethodPost, "/api/v1/checkout", sessionID, details)
	require.Equal(t, http.StatusCreated, w.Code)
	first := decode[checkoutResponse](t, w)

	w = do(t, router, http.MethodPost, "/api/v1/checkout", sessionID, details)
	require.Equal(t, http.StatusCreated, w.Code)
	second := decode[checkoutResponse](t, w)

	w = do(t, router, http.MethodGet, "/api/v1/checkout/"+first.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "superseded", decode[checkoutResponse](t, w).Status)

	w = do(t, router, http.MethodPost, "/api/v1/cart/items", sessionID, map[string]any{
		"restaurant_id": "2",
		"item_id":       "p1",
		"quantity":      1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/checkout/"+second.ID+"/confirm", "", map[string]any{"success": true})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/cart", sessionID, nil)
	assert.Equal(t, 2, decode[cartResponse](t, w).ItemCount)

	w = do(t, router, http.MethodGet, "/api/v1/orders/"+second.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
