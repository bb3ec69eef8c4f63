package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubCartRepo struct {
	db.ICartRepository
	cart *model.Cart
}

func (r *stubCartRepo) GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	if r.cart == nil {
		return nil, db.ErrRecordNotFound
	}
	return r.cart, nil
}

type stubAddressRepo struct {
	db.IAddressRepository
	addresses map[uint]*model.Address
}

func (r *stubAddressRepo) GetUserAddress(ctx context.Context, userID, addressID uint) (*model.Address, error) {
	addr, ok := r.addresses[addressID]
	if !ok {
		return nil, db.ErrRecordNotFound
	}
	return addr, nil
}

// stubOrderRepo 捕捉CreateOrderTx收到的訂單
type stubOrderRepo struct {
	db.IOrderRepository
	created *model.Order
	cartID  uint
	paid    []uint
}

func (r *stubOrderRepo) CreateOrderTx(ctx context.Context, order *model.Order, cartID uint, actor *uint) error {
	order.OrderID = 1
	r.created = order
	r.cartID = cartID
	return nil
}

func (r *stubOrderRepo) GetUserOrder(ctx context.Context, userID, orderID uint) (*model.Order, error) {
	if r.created == nil || r.created.OrderID != orderID {
		return nil, db.ErrRecordNotFound
	}
	return r.created, nil
}

func (r *stubOrderRepo) MarkPaid(ctx context.Context, orderID uint, paidAt time.Time, note string) error {
	r.paid = append(r.paid, orderID)
	return nil
}

func testCartWith(items ...model.CartItem) *model.Cart {
	return &model.Cart{CartID: 10, UserID: 42, Items: items}
}

func cartItem(productID uint, price float64, qty int) model.CartItem {
	return model.CartItem{
		ProductID: productID,
		Quantity:  qty,
		Product:   &model.Product{ProductID: productID, Price: decimal.NewFromFloat(price)},
	}
}

func newOrderServiceForTest(cart *model.Cart, coupons *fakeCouponRepo) (IOrderService, *stubOrderRepo) {
	orderRepo := &stubOrderRepo{}
	svc := NewOrderService(
		orderRepo,
		&stubCartRepo{cart: cart},
		&stubAddressRepo{addresses: map[uint]*model.Address{5: {AddressID: 5, UserID: 42, City: "Taipei"}}},
		coupons,
		&fakeNotifier{},
		nil,
	)
	return svc, orderRepo
}

func TestCreateOrderTotals(t *testing.T) {
	cart := testCartWith(cartItem(1, 49.90, 2), cartItem(2, 120.00, 1))
	svc, orderRepo := newOrderServiceForTest(cart, newFakeCouponRepo())

	order, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		UserID:            42,
		ShippingAddressID: 5,
		ShippingMethod:    model.ShippingExpress,
		PaymentMethod:     model.PaymentMethodCard,
	})
	require.NoError(t, err)
	require.Equal(t, uint(10), orderRepo.cartID)
	require.Len(t, order.Items, 2)

	// subtotal 219.80 + express 30.00
	require.True(t, order.Subtotal.Equal(decimal.NewFromFloat(219.80)))
	require.True(t, order.ShippingCost.Equal(decimal.NewFromFloat(30.00)))
	require.True(t, order.Discount.Equal(decimal.Zero))
	require.True(t, order.TotalPrice.Equal(decimal.NewFromFloat(249.80)))
	require.Equal(t, model.OrderStatusPending, order.Status)
	require.NotEmpty(t, order.OrderNumber)
}

func TestCreateOrderAppliesValidCoupon(t *testing.T) {
	coupon := activeCoupon("SAVE10")
	coupon.CouponID = 3
	cart := testCartWith(cartItem(1, 100.00, 2))
	svc, _ := newOrderServiceForTest(cart, newFakeCouponRepo(coupon))

	order, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		UserID:            42,
		ShippingAddressID: 5,
		ShippingMethod:    model.ShippingStandard,
		PaymentMethod:     model.PaymentMethodCard,
		CouponCode:        "SAVE10",
	})
	require.NoError(t, err)

	// subtotal 200 - 10% + standard 15
	require.True(t, order.Discount.Equal(decimal.NewFromInt(20)))
	require.True(t, order.TotalPrice.Equal(decimal.NewFromInt(195)))
	require.NotNil(t, order.CouponID)
	require.Equal(t, uint(3), *order.CouponID)
}

func TestCreateOrderCouponValidAtBoundary(t *testing.T) {
	coupon := activeCoupon("EDGE10")
	coupon.CouponID = 8
	cart := testCartWith(cartItem(1, 100.00, 2))
	svc, _ := newOrderServiceForTest(cart, newFakeCouponRepo(coupon))

	// 時間停在效期最後一刻，邊界時間點仍可折抵
	orig := nowFunc
	nowFunc = func() time.Time { return coupon.ValidTo }
	defer func() { nowFunc = orig }()

	order, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		UserID:            42,
		ShippingAddressID: 5,
		ShippingMethod:    model.ShippingStandard,
		PaymentMethod:     model.PaymentMethodCard,
		CouponCode:        "EDGE10",
	})
	require.NoError(t, err)
	require.True(t, order.Discount.Equal(decimal.NewFromInt(20)))
	require.NotNil(t, order.CouponID)
}

func TestCreateOrderIgnoresInvalidCoupon(t *testing.T) {
	expired := activeCoupon("OLD10")
	expired.ValidTo = time.Now().Add(-time.Minute)
	cart := testCartWith(cartItem(1, 100.00, 2))
	svc, _ := newOrderServiceForTest(cart, newFakeCouponRepo(expired))

	order, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		UserID:            42,
		ShippingAddressID: 5,
		ShippingMethod:    model.ShippingStandard,
		PaymentMethod:     model.PaymentMethodCard,
		CouponCode:        "OLD10",
	})
	require.NoError(t, err)

	// 無效折扣碼不報錯，只是discount=0且不關聯
	require.True(t, order.Discount.Equal(decimal.Zero))
	require.Nil(t, order.CouponID)
	require.True(t, order.TotalPrice.Equal(decimal.NewFromInt(215)))
}

func TestCreateOrderShippingCostOverride(t *testing.T) {
	cart := testCartWith(cartItem(1, 100.00, 1))
	svc, _ := newOrderServiceForTest(cart, newFakeCouponRepo())

	override := decimal.NewFromInt(10)
	order, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		UserID:               42,
		ShippingAddressID:    5,
		ShippingMethod:       model.ShippingStandard,
		PaymentMethod:        model.PaymentMethodCard,
		ShippingCostOverride: &override,
	})
	require.NoError(t, err)

	// 覆寫時不查運費表
	require.True(t, order.ShippingCost.Equal(decimal.NewFromInt(10)))
	require.True(t, order.TotalPrice.Equal(decimal.NewFromInt(110)))
}

func TestCreateOrderEmptyCart(t *testing.T) {
	svc, _ := newOrderServiceForTest(testCartWith(), newFakeCouponRepo())

	_, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		UserID:            42,
		ShippingAddressID: 5,
	})
	appErr := er.AsAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, er.BadRequestCode, appErr.Code)
}

func TestCreateOrderMissingAddress(t *testing.T) {
	cart := testCartWith(cartItem(1, 100.00, 1))
	svc, _ := newOrderServiceForTest(cart, newFakeCouponRepo())

	_, err := svc.CreateOrder(context.Background(), CreateOrderParams{
		UserID:            42,
		ShippingAddressID: 999,
	})
	appErr := er.AsAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, er.NotFoundCode, appErr.Code)
}
