package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/foodcart/internal/domain"
)

type OrderRepository interface {
	SaveOrder(ctx context.Context, order domain.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (domain.Order, error)
}

// Notifier receives presentation events emitted by the cart.
type Notifier interface {
	ItemAdded(ctx context.Context, quantity int, itemName string)
}
