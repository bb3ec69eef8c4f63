package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestCoupon() *Coupon {
	return &Coupon{
		Code:          "SAVE10",
		DiscountType:  DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		ValidFrom:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:       time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		Active:        true,
	}
}

func TestCouponIsValid(t *testing.T) {
	coupon := newTestCoupon()

	// 區間內有效
	require.True(t, coupon.IsValid(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)))

	// 邊界時間視為有效
	require.True(t, coupon.IsValid(coupon.ValidFrom))
	require.True(t, coupon.IsValid(coupon.ValidTo))

	// 區間外無效
	require.False(t, coupon.IsValid(coupon.ValidFrom.Add(-time.Second)))
	require.False(t, coupon.IsValid(coupon.ValidTo.Add(time.Second)))
}

func TestCouponIsValidInactive(t *testing.T) {
	coupon := newTestCoupon()
	coupon.Active = false

	require.False(t, coupon.IsValid(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)))
}

func TestCouponIsValidUsageLimit(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	limit := uint(5)

	coupon := newTestCoupon()
	coupon.UsageLimit = &limit
	coupon.TimesUsed = 4
	require.True(t, coupon.IsValid(now))

	// 達到上限即失效
	coupon.TimesUsed = 5
	require.False(t, coupon.IsValid(now))
}

func TestCouponDiscountPercentage(t *testing.T) {
	coupon := newTestCoupon()

	discount := coupon.Discount(decimal.NewFromInt(200))
	require.True(t, discount.Equal(decimal.NewFromInt(20)), "10%% of 200 should be 20, got %s", discount)
}

func TestCouponDiscountFixed(t *testing.T) {
	coupon := newTestCoupon()
	coupon.DiscountType = DiscountFixed
	coupon.DiscountValue = decimal.NewFromInt(250)

	// 固定面額不以小計為上限
	discount := coupon.Discount(decimal.NewFromInt(200))
	require.True(t, discount.Equal(decimal.NewFromInt(250)))
}
