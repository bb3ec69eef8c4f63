package service

import (
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestShippingCost(t *testing.T) {
	require.True(t, ShippingCost(model.ShippingStandard).Equal(decimal.NewFromFloat(15.00)))
	require.True(t, ShippingCost(model.ShippingExpress).Equal(decimal.NewFromFloat(30.00)))

	// 未知方式視為standard
	require.True(t, ShippingCost(model.ShippingMethod("carrier-pigeon")).Equal(decimal.NewFromFloat(15.00)))
}

func TestCheckoutShippingCost(t *testing.T) {
	// 滿200免運，差一分錢仍收運費
	require.True(t, CheckoutShippingCost(decimal.NewFromFloat(199.99)).Equal(decimal.NewFromInt(10)))
	require.True(t, CheckoutShippingCost(decimal.NewFromInt(200)).Equal(decimal.Zero))
	require.True(t, CheckoutShippingCost(decimal.NewFromInt(500)).Equal(decimal.Zero))
	require.True(t, CheckoutShippingCost(decimal.Zero).Equal(decimal.NewFromInt(10)))
}
