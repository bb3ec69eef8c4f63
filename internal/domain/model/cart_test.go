package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCartTotals(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{
				Quantity: 2,
				Product:  &Product{Price: decimal.NewFromFloat(49.90)},
			},
			{
				Quantity: 1,
				Product:  &Product{Price: decimal.NewFromFloat(120.00)},
			},
		},
	}

	require.True(t, cart.TotalPrice().Equal(decimal.NewFromFloat(219.80)))
	require.Equal(t, 3, cart.TotalItems())
}

func TestCartItemSubtotalWithoutProduct(t *testing.T) {
	// Product未預載時小計為0，不panic
	item := &CartItem{Quantity: 3}
	require.True(t, item.Subtotal().Equal(decimal.Zero))
}
