package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/port"
	"github.com/rs/zerolog"
	"golang.org/x/text/currency"
)

type CheckoutStatus string

const (
	CheckoutPending    CheckoutStatus = "pending"
	CheckoutProcessing CheckoutStatus = "processing"
	CheckoutCommitted  CheckoutStatus = "committed"
	CheckoutFailed     CheckoutStatus = "failed"
	// CheckoutSuperseded means a newer checkout of the same cart took its place,
	// or the cart changed before payment was confirmed.
	CheckoutSuperseded CheckoutStatus = "superseded"
)

// Checkout is a submitted cart waiting for the payment outcome.
type Checkout struct {
	ID     uuid.UUID
	Status CheckoutStatus
	Order  domain.Order
}

type checkoutRecord struct {
	checkout Checkout
	cart     *CartService
	revision uint64
}

// CheckoutService runs the two-phase checkout: Submit snapshots the cart into a
// pending order, Confirm settles it. Only a successful confirmation clears the cart.
// A cart has at most one open checkout; submitting again supersedes the previous one.
type CheckoutService struct {
	mu        sync.Mutex
	checkouts map[uuid.UUID]*checkoutRecord
	open      map[*CartService]uuid.UUID

	orders   port.OrderRepository
	currency currency.Unit
	log      zerolog.Logger
	now      func() time.Time
}

// NewCheckoutService accepts a nil orders repository, in which case placed
// orders are kept only in memory.
func NewCheckoutService(orders port.OrderRepository, unit currency.Unit, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{
		checkouts: make(map[uuid.UUID]*checkoutRecord),
		open:      make(map[*CartService]uuid.UUID),
		orders:    orders,
		currency:  unit,
		log:       log,
		now:       time.Now,
	}
}

func (s *CheckoutService) Submit(_ context.Context, sessionID string, cart *CartService, details domain.DeliveryDetails) (Checkout, error) {
	if details.DeliveryTime == "" {
		details.DeliveryTime = domain.DeliveryASAP
	}
	if err := details.Validate(); err != nil {
		return Checkout{}, fmt.Errorf("details.Validate: %w", err)
	}

	entries, summary, revision := cart.snapshot()
	if len(entries) == 0 {
		return Checkout{}, fmt.Errorf("session[%s]: %w", sessionID, domain.ErrEmptyCart)
	}

	lines := make([]domain.OrderLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, domain.NewOrderLine(e))
	}

	checkout := Checkout{
		ID:     uuid.New(),
		Status: CheckoutPending,
		Order: domain.Order{
			Number:      orderNumber(),
			SessionID:   sessionID,
			Lines:       lines,
			Subtotal:    summary.Subtotal,
			DeliveryFee: summary.DeliveryFee,
			ServiceFee:  summary.ServiceFee,
			GrandTotal:  summary.GrandTotal,
			Currency:    s.currency,
			Delivery:    details,
		},
	}
	checkout.Order.ID = checkout.ID

	s.mu.Lock()
	superseded, err := s.supersedeLocked(cart)
	if err != nil {
		s.mu.Unlock()
		return Checkout{}, err
	}
	s.checkouts[checkout.ID] = &checkoutRecord{checkout: checkout, cart: cart, revision: revision}
	s.open[cart] = checkout.ID
	s.mu.Unlock()

	if superseded != uuid.Nil {
		s.log.Info().Str("checkout_id", superseded.String()).Msg("checkout superseded")
	}

	s.log.Info().
		Str("checkout_id", checkout.ID.String()).
		Str("session_id", sessionID).
		Str("total", checkout.Order.Total().String()).
		Msg("checkout submitted")

	return checkout, nil
}

// Confirm settles a pending checkout with the payment outcome. On success the
// order is recorded and the cart cleared; on failure the cart is left as is.
// If the cart changed after Submit the checkout is superseded and nothing is
// recorded. If recording fails the checkout returns to pending and can be
// confirmed again.
func (s *CheckoutService) Confirm(ctx context.Context, id uuid.UUID, success bool) (Checkout, error) {
	s.mu.Lock()
	rec, ok := s.checkouts[id]
	if !ok {
		s.mu.Unlock()
		return Checkout{}, fmt.Errorf("checkout[%s]: %w", id, domain.ErrNotFound)
	}
	if rec.checkout.Status != CheckoutPending {
		status := rec.checkout.Status
		s.mu.Unlock()
		return Checkout{}, fmt.Errorf("checkout[%s] is %s: %w", id, status, domain.ErrCheckoutSettled)
	}
	rec.checkout.Status = CheckoutProcessing
	order := rec.checkout.Order
	s.mu.Unlock()

	log := s.log.With().Str("checkout_id", id.String()).Logger()

	if !success {
		log.Warn().Msg("payment failed, cart kept")
		return s.settle(id, CheckoutFailed, nil), nil
	}

	if err := rec.cart.beginCommit(rec.revision); err != nil {
		if errors.Is(err, domain.ErrCartChanged) {
			log.Warn().Msg("cart changed after submit, checkout superseded")
			s.settle(id, CheckoutSuperseded, nil)
		} else {
			s.settle(id, CheckoutPending, nil)
		}
		return Checkout{}, fmt.Errorf("checkout[%s]: %w", id, err)
	}

	order.PlacedAt = s.now().UTC()

	if s.orders != nil {
		if err := s.orders.SaveOrder(ctx, order); err != nil {
			rec.cart.finishCommit(false)
			log.Error().Err(err).Msg("recording order failed")
			s.settle(id, CheckoutPending, nil)
			return Checkout{}, fmt.Errorf("orders.SaveOrder: %w", err)
		}
	}

	rec.cart.finishCommit(true)

	log.Info().Str("order_number", order.Number).Msg("order placed")

	return s.settle(id, CheckoutCommitted, &order), nil
}

func (s *CheckoutService) Get(id uuid.UUID) (Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.checkouts[id]
	if !ok {
		return Checkout{}, fmt.Errorf("checkout[%s]: %w", id, domain.ErrNotFound)
	}

	return rec.checkout, nil
}

// Order returns a placed order, from the repository when one is configured.
func (s *CheckoutService) Order(ctx context.Context, id uuid.UUID) (domain.Order, error) {
	if s.orders != nil {
		order, err := s.orders.GetOrder(ctx, id)
		if err != nil {
			return domain.Order{}, fmt.Errorf("orders.GetOrder: %w", err)
		}
		return order, nil
	}

	checkout, err := s.Get(id)
	if err != nil {
		return domain.Order{}, err
	}
	if checkout.Status != CheckoutCommitted {
		return domain.Order{}, fmt.Errorf("order[%s]: %w", id, domain.ErrNotFound)
	}

	return checkout.Order, nil
}

func (s *CheckoutService) settle(id uuid.UUID, status CheckoutStatus, order *domain.Order) Checkout {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.checkouts[id]
	rec.checkout.Status = status
	if order != nil {
		rec.checkout.Order = *order
	}
	if status != CheckoutPending && s.open[rec.cart] == id {
		delete(s.open, rec.cart)
	}

	return rec.checkout
}

// supersedeLocked retires the cart's pending checkout. A checkout that is
// already recording its order cannot be replaced. Must be called with mu held.
func (s *CheckoutService) supersedeLocked(cart *CartService) (uuid.UUID, error) {
	id, ok := s.open[cart]
	if !ok {
		return uuid.Nil, nil
	}

	rec := s.checkouts[id]
	if rec.checkout.Status == CheckoutProcessing {
		return uuid.Nil, fmt.Errorf("checkout[%s] is %s: %w", id, rec.checkout.Status, domain.ErrCartLocked)
	}

	rec.checkout.Status = CheckoutSuperseded
	delete(s.open, cart)

	return id, nil
}

func orderNumber() string {
	return fmt.Sprintf("FE%05d", rand.IntN(100000))
}
