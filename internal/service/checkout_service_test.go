package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/payment"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newCheckoutServiceForTest(cart *model.Cart, gateway *fakeGateway, coupons *fakeCouponRepo) (ICheckoutService, *stubOrderRepo, *fakePaymentRepo) {
	cartRepo := &stubCartRepo{cart: cart}
	orderRepo := &stubOrderRepo{}
	paymentRepo := newFakePaymentRepo()
	addressRepo := &stubAddressRepo{addresses: map[uint]*model.Address{5: {AddressID: 5, UserID: 42, City: "Taipei"}}}

	orderService := NewOrderService(orderRepo, cartRepo, addressRepo, coupons, &fakeNotifier{}, nil)
	svc := NewCheckoutService(cartRepo, orderRepo, paymentRepo, coupons, orderService, gateway, nil)
	return svc, orderRepo, paymentRepo
}

func TestQuote(t *testing.T) {
	cart := testCartWith(cartItem(1, 80.00, 1))
	svc, _, _ := newCheckoutServiceForTest(cart, &fakeGateway{}, newFakeCouponRepo())

	quote, err := svc.Quote(context.Background(), 42)
	require.NoError(t, err)

	// 未達免運門檻，收固定運費
	require.True(t, quote.Subtotal.Equal(decimal.NewFromInt(80)))
	require.True(t, quote.ShippingCost.Equal(decimal.NewFromInt(10)))
	require.True(t, quote.Total.Equal(decimal.NewFromInt(90)))
	require.Equal(t, "pk_test", quote.PublicKey)
}

func TestQuoteFreeShipping(t *testing.T) {
	cart := testCartWith(cartItem(1, 100.00, 2))
	svc, _, _ := newCheckoutServiceForTest(cart, &fakeGateway{}, newFakeCouponRepo())

	quote, err := svc.Quote(context.Background(), 42)
	require.NoError(t, err)
	require.True(t, quote.ShippingCost.Equal(decimal.Zero))
	require.True(t, quote.Total.Equal(decimal.NewFromInt(200)))
}

func TestCheckoutSucceeded(t *testing.T) {
	cart := testCartWith(cartItem(1, 100.00, 2))
	gateway := &fakeGateway{}
	svc, orderRepo, paymentRepo := newCheckoutServiceForTest(cart, gateway, newFakeCouponRepo())

	result, err := svc.Checkout(context.Background(), CheckoutParams{
		UserID:            42,
		UserEmail:         "royce@example.com",
		PaymentMethodID:   "pm_card",
		ShippingAddressID: 5,
	})
	require.NoError(t, err)
	require.False(t, result.RequiresAction)
	require.NotNil(t, result.Order)

	// 滿額免運，收款金額等於小計
	require.True(t, gateway.confirmAmount.Equal(decimal.NewFromInt(200)))
	require.True(t, result.Order.ShippingCost.Equal(decimal.Zero))

	// 付款與訂單都已標記完成
	require.Equal(t, []uint{result.Order.OrderID}, orderRepo.paid)
	pay, err := paymentRepo.GetPaymentByIntentID(context.Background(), "pi_test")
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusSucceeded, pay.Status)
	require.NotNil(t, pay.PaidAt)
}

func TestCheckoutChargesDiscountedTotal(t *testing.T) {
	coupon := activeCoupon("SAVE10")
	coupon.CouponID = 3
	cart := testCartWith(cartItem(1, 100.00, 1))
	gateway := &fakeGateway{}
	svc, _, paymentRepo := newCheckoutServiceForTest(cart, gateway, newFakeCouponRepo(coupon))

	result, err := svc.Checkout(context.Background(), CheckoutParams{
		UserID:            42,
		PaymentMethodID:   "pm_card",
		ShippingAddressID: 5,
		CouponCode:        "SAVE10",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Order)

	// subtotal 100 + 運費 10 - 10% 折扣，收款金額必須等於訂單總額
	require.True(t, result.Order.Discount.Equal(decimal.NewFromInt(10)))
	require.True(t, result.Order.TotalPrice.Equal(decimal.NewFromInt(100)))
	require.True(t, gateway.confirmAmount.Equal(result.Order.TotalPrice))
	require.NotNil(t, result.Order.CouponID)
	require.Equal(t, uint(3), *result.Order.CouponID)

	// 付款紀錄的金額也要跟著折扣後總額
	pay, err := paymentRepo.GetPaymentByIntentID(context.Background(), "pi_test")
	require.NoError(t, err)
	require.True(t, pay.Amount.Equal(result.Order.TotalPrice))
}

func TestCheckoutRequiresAction(t *testing.T) {
	cart := testCartWith(cartItem(1, 100.00, 2))
	gateway := &fakeGateway{confirmStatus: payment.IntentStatusRequiresAction}
	svc, orderRepo, paymentRepo := newCheckoutServiceForTest(cart, gateway, newFakeCouponRepo())

	result, err := svc.Checkout(context.Background(), CheckoutParams{
		UserID:            42,
		PaymentMethodID:   "pm_card",
		ShippingAddressID: 5,
	})
	require.NoError(t, err)

	// 3DS驗證中不建立訂單
	require.True(t, result.RequiresAction)
	require.Equal(t, "secret_test", result.ClientSecret)
	require.Nil(t, result.Order)
	require.Nil(t, orderRepo.created)
	require.Empty(t, paymentRepo.payments)
}

func TestCheckoutMissingPaymentMethod(t *testing.T) {
	cart := testCartWith(cartItem(1, 100.00, 2))
	svc, _, _ := newCheckoutServiceForTest(cart, &fakeGateway{}, newFakeCouponRepo())

	_, err := svc.Checkout(context.Background(), CheckoutParams{
		UserID:            42,
		ShippingAddressID: 5,
	})
	appErr := er.AsAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, er.BadRequestCode, appErr.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _ := newCheckoutServiceForTest(nil, &fakeGateway{}, newFakeCouponRepo())

	_, err := svc.Checkout(context.Background(), CheckoutParams{
		UserID:            42,
		PaymentMethodID:   "pm_card",
		ShippingAddressID: 5,
	})
	appErr := er.AsAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, er.BadRequestCode, appErr.Code)
}
