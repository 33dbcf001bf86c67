// Package httpapi exposes the catalog, the session cart and checkout over HTTP.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/foodcart/internal/port"
	"github.com/nikolayk812/foodcart/internal/service"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
)

type Server struct {
	catalog  port.Catalog
	sessions *service.Sessions
	checkout *service.CheckoutService
	currency currency.Unit
	log      zerolog.Logger
}

func NewServer(
	catalog port.Catalog,
	sessions *service.Sessions,
	checkout *service.CheckoutService,
	unit currency.Unit,
	log zerolog.Logger,
) *Server {
	return &Server{
		catalog:  catalog,
		sessions: sessions,
		checkout: checkout,
		currency: unit,
		log:      log,
	}
}

// Router builds the gin engine. ginMode is one of gin's modes: debug, release or test.
func (s *Server) Router(ginMode string) *gin.Engine {
	gin.SetMode(ginMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(s.log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/cuisines", s.ListCuisines)

		restaurants := v1.Group("/restaurants")
		{
			restaurants.GET("", s.ListRestaurants)
			restaurants.GET("/featured", s.FeaturedRestaurants)
			restaurants.GET("/:id", s.GetRestaurant)
			restaurants.GET("/:id/menu", s.ListMenu)
			restaurants.GET("/:id/menu/:itemId", s.GetMenuItem)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", LookupSession(s.sessions), s.GetCart)
			cart.DELETE("", LookupSession(s.sessions), s.ClearCart)
			cart.POST("/items", Session(s.sessions), s.AddCartItem)
			cart.PATCH("/items/:itemId", LookupSession(s.sessions), s.UpdateCartItem)
			cart.DELETE("/items/:itemId", LookupSession(s.sessions), s.RemoveCartItem)
		}

		v1.POST("/checkout", LookupSession(s.sessions), s.SubmitCheckout)
		v1.GET("/checkout/:id", s.GetCheckout)
		v1.POST("/checkout/:id/confirm", s.ConfirmCheckout)

		v1.GET("/orders/:id", s.GetOrder)
	}

	return router
}
