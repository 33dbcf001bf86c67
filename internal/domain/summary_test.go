package domain_test

import (
	"testing"

	"github.com/nikolayk812/foodcart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	burger := cheeseburger()

	cart := domain.NewCart()
	selected, err := domain.ResolveSelection(burger, map[string]string{"Size": "s2", "Sides": "side1"})
	require.NoError(t, err)
	mustAdd(t, cart, burger, 1, selected)

	s := domain.Summarize(cart, domain.DefaultFees())

	assert.Equal(t, "15.98", s.Subtotal.StringFixed(2))
	assert.Equal(t, "3.99", s.DeliveryFee.StringFixed(2))
	assert.Equal(t, "1.99", s.ServiceFee.StringFixed(2))
	assert.Equal(t, "21.96", s.GrandTotal.StringFixed(2))
	assert.Equal(t, 1, s.ItemCount)
	require.Len(t, s.Groups, 1)
	assert.Equal(t, "1", s.Groups[0].RestaurantID)
}

func TestSummarize_FeesOncePerOrder(t *testing.T) {
	cart := domain.NewCart()
	mustAdd(t, cart, menuItem("a1", "A"), 1, nil)
	mustAdd(t, cart, menuItem("b1", "B"), 1, nil)

	s := domain.Summarize(cart, domain.DefaultFees())

	assert.Len(t, s.Groups, 2)
	assert.True(t, s.GrandTotal.Equal(cart.Subtotal().Add(s.DeliveryFee).Add(s.ServiceFee)))
	assert.Equal(t, "3.99", s.DeliveryFee.StringFixed(2))
}

func TestSummarize_EmptyCart(t *testing.T) {
	tests := []struct {
		name string
		cart func() *domain.Cart
	}{
		{
			name: "never populated: ok",
			cart: domain.NewCart,
		},
		{
			name: "cleared: ok",
			cart: func() *domain.Cart {
				c := domain.NewCart()
				_, _ = c.AddItem(fries(), 2, nil)
				c.Clear()
				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.Summarize(tt.cart(), domain.DefaultFees())

			assert.True(t, s.Subtotal.IsZero())
			assert.True(t, s.DeliveryFee.IsZero())
			assert.True(t, s.ServiceFee.IsZero())
			assert.True(t, s.GrandTotal.IsZero())
			assert.Empty(t, s.Groups)
		})
	}
}
