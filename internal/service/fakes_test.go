package service_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodcart/internal/catalog"
	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/nikolayk812/foodcart/internal/service"
	"github.com/rs/zerolog"
)

type itemAdded struct {
	quantity int
	name     string
}

type fakeNotifier struct {
	mu     sync.Mutex
	events []itemAdded
}

func (n *fakeNotifier) ItemAdded(_ context.Context, quantity int, itemName string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.events = append(n.events, itemAdded{quantity: quantity, name: itemName})
}

func (n *fakeNotifier) Events() []itemAdded {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]itemAdded(nil), n.events...)
}

type fakeOrders struct {
	mu     sync.Mutex
	orders map[uuid.UUID]domain.Order
	err    error

	// when set, SaveOrder signals saving and waits for release before storing
	saving  chan struct{}
	release chan struct{}
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{orders: make(map[uuid.UUID]domain.Order)}
}

func (f *fakeOrders) SaveOrder(_ context.Context, order domain.Order) error {
	if f.release != nil {
		f.saving <- struct{}{}
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrders) GetOrder(_ context.Context, id uuid.UUID) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order, ok := f.orders[id]
	if !ok {
		return domain.Order{}, fmt.Errorf("order[%s]: %w", id, domain.ErrNotFound)
	}
	return order, nil
}

func (f *fakeOrders) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.orders)
}

func (f *fakeOrders) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.err = err
}

func newCart(notifier *fakeNotifier) *service.CartService {
	if notifier == nil {
		return service.NewCartService(catalog.NewSeeded(), nil, domain.DefaultFees(), zerolog.Nop())
	}
	return service.NewCartService(catalog.NewSeeded(), notifier, domain.DefaultFees(), zerolog.Nop())
}

func validDetails() domain.DeliveryDetails {
	return domain.DeliveryDetails{
		FullName:      "Jane Doe",
		Phone:         "555-0100",
		StreetAddress: "1 Main St",
		City:          "Springfield",
		State:         "IL",
		Zip:           "62701",
		DeliveryTime:  domain.DeliveryASAP,
		PaymentMethod: domain.PaymentCard,
	}
}
