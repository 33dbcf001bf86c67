package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/foodcart/internal/domain"
)

type checkoutRequest struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	DeliveryTime  string `json:"delivery_time"`
	PaymentMethod string `json:"payment_method"`
}

type confirmRequest struct {
	Success *bool `json:"success" binding:"required"`
}

func (r checkoutRequest) details() domain.DeliveryDetails {
	return domain.DeliveryDetails{
		FullName:      r.FullName,
		Phone:         r.Phone,
		StreetAddress: r.StreetAddress,
		City:          r.City,
		State:         r.State,
		Zip:           r.Zip,
		DeliveryTime:  domain.DeliveryTime(r.DeliveryTime),
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
	}
}

// SubmitCheckout snapshots the session cart into a pending order. The cart is
// left untouched until the checkout is confirmed.
// POST /api/v1/checkout
func (s *Server) SubmitCheckout(c *gin.Context) {
	sessionID, cart := cartFrom(c)

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if cart == nil {
		respondError(c, fmt.Errorf("session[%s]: %w", c.GetHeader(SessionHeader), domain.ErrEmptyCart))
		return
	}

	checkout, err := s.checkout.Submit(c.Request.Context(), sessionID, cart, req.details())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCheckoutView(checkout))
}

// GET /api/v1/checkout/:id
func (s *Server) GetCheckout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	checkout, err := s.checkout.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCheckoutView(checkout))
}

// ConfirmCheckout reports the payment outcome.
// POST /api/v1/checkout/:id/confirm
func (s *Server) ConfirmCheckout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	checkout, err := s.checkout.Confirm(c.Request.Context(), id, *req.Success)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCheckoutView(checkout))
}

// GET /api/v1/orders/:id
func (s *Server) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := s.checkout.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderView(order))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")

	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(c, fmt.Errorf("id[%s] is not a uuid: %w", raw, err))
		return uuid.Nil, false
	}
	if id == uuid.Nil {
		badRequest(c, errors.New("id is empty"))
		return uuid.Nil, false
	}

	return id, true
}
