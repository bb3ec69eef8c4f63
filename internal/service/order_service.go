package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// 標準出貨路徑的運費表
var shippingCosts = map[model.ShippingMethod]decimal.Decimal{
	model.ShippingStandard: decimal.NewFromFloat(15.00),
	model.ShippingExpress:  decimal.NewFromFloat(30.00),
}

// ShippingCost 依配送方式回傳運費，未知方式視為standard
func ShippingCost(method model.ShippingMethod) decimal.Decimal {
	if cost, ok := shippingCosts[method]; ok {
		return cost
	}
	return shippingCosts[model.ShippingStandard]
}

// CreateOrderParams 建立訂單所需參數
// ShippingCostOverride 供直接結帳路徑帶入滿額免運的運費，nil時依配送方式查表
// AppliedCoupon 供直接結帳路徑帶入扣款前已核驗的折扣碼，設定時不再以CouponCode重新解析，
// 確保收款金額與訂單總額出自同一次折扣計算
type CreateOrderParams struct {
	UserID               uint
	ShippingAddressID    uint
	BillingAddressID     *uint
	ShippingMethod       model.ShippingMethod
	PaymentMethod        model.PaymentMethod
	CouponCode           string
	AppliedCoupon        *model.Coupon
	ShippingCostOverride *decimal.Decimal
}

type IOrderService interface {
	// CreateOrder 由購物車建立訂單，訂單本體、明細、歷史、折扣碼計數與清空購物車在同一交易內完成
	CreateOrder(ctx context.Context, params CreateOrderParams) (*model.Order, error)
	GetUserOrders(ctx context.Context, userID uint) ([]model.Order, error)
	GetUserOrder(ctx context.Context, userID, orderID uint) (*model.Order, error)
	// CancelOrder 僅pending/paid可取消
	CancelOrder(ctx context.Context, userID, orderID uint) (*model.Order, error)

	// 以下為staff操作
	GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error)
	// BulkTransition 批次轉移訂單狀態，shipped/delivered 會觸發通知信
	BulkTransition(ctx context.Context, orderIDs []uint, status model.OrderStatus, note string, actor uint) ([]uint, error)
	SetTrackingNumber(ctx context.Context, orderID uint, trackingNumber string, actor uint) error
}

type OrderService struct {
	orderRepo           db.IOrderRepository
	cartRepo            db.ICartRepository
	addressRepo         db.IAddressRepository
	couponRepo          db.ICouponRepository
	notificationService INotificationService
	logger              *zerolog.Logger
}

func NewOrderService(
	orderRepo db.IOrderRepository,
	cartRepo db.ICartRepository,
	addressRepo db.IAddressRepository,
	couponRepo db.ICouponRepository,
	notificationService INotificationService,
	logger *zerolog.Logger,
) IOrderService {
	if orderRepo == nil || cartRepo == nil || addressRepo == nil || couponRepo == nil {
		panic("order service dependencies cannot be nil")
	}
	return &OrderService{
		orderRepo:           orderRepo,
		cartRepo:            cartRepo,
		addressRepo:         addressRepo,
		couponRepo:          couponRepo,
		notificationService: notificationService,
		logger:              logger,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, params CreateOrderParams) (*model.Order, error) {
	cart, err := s.cartRepo.GetCartByUserID(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.BadRequestCode, "cart is empty")
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, er.New(er.BadRequestCode, "cart is empty")
	}

	shippingAddr, err := s.addressRepo.GetUserAddress(ctx, params.UserID, params.ShippingAddressID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "shipping address not found")
		}
		return nil, err
	}

	var billingAddr *model.Address
	if params.BillingAddressID != nil {
		billingAddr, err = s.addressRepo.GetUserAddress(ctx, params.UserID, *params.BillingAddressID)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				return nil, er.New(er.NotFoundCode, "billing address not found")
			}
			return nil, err
		}
	}

	subtotal := cart.TotalPrice()
	shippingCost := ShippingCost(params.ShippingMethod)
	if params.ShippingCostOverride != nil {
		shippingCost = *params.ShippingCostOverride
	}

	// 折扣碼存在且有效才套用，否則discount=0
	discount := decimal.Zero
	var couponID *uint
	switch {
	case params.AppliedCoupon != nil:
		discount = params.AppliedCoupon.Discount(subtotal)
		couponID = &params.AppliedCoupon.CouponID
	case params.CouponCode != "":
		coupon, err := s.couponRepo.GetCouponByCode(ctx, params.CouponCode)
		if err != nil && !errors.Is(err, db.ErrRecordNotFound) {
			return nil, err
		}
		if coupon != nil && coupon.IsValid(nowFunc()) {
			discount = coupon.Discount(subtotal)
			couponID = &coupon.CouponID
		}
	}

	order, err := buildOrder(cart, params, subtotal, shippingCost, discount, couponID, shippingAddr, billingAddr)
	if err != nil {
		return nil, err
	}

	actor := params.UserID
	if err := s.orderRepo.CreateOrderTx(ctx, order, cart.CartID, &actor); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.notifyAsync(ctx, model.EmailTypeOrderCreated, order.OrderID)

	return s.orderRepo.GetUserOrder(ctx, params.UserID, order.OrderID)
}

func buildOrder(
	cart *model.Cart,
	params CreateOrderParams,
	subtotal, shippingCost, discount decimal.Decimal,
	couponID *uint,
	shippingAddr, billingAddr *model.Address,
) (*model.Order, error) {
	shippingJSON, err := json.Marshal(model.SnapshotAddress(shippingAddr))
	if err != nil {
		return nil, fmt.Errorf("snapshot shipping address: %w", err)
	}

	var billingJSON json.RawMessage
	if billingAddr != nil {
		billingJSON, err = json.Marshal(model.SnapshotAddress(billingAddr))
		if err != nil {
			return nil, fmt.Errorf("snapshot billing address: %w", err)
		}
	}

	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, cartItem := range cart.Items {
		if cartItem.Product == nil {
			return nil, fmt.Errorf("cart item %d has no product loaded", cartItem.ItemID)
		}
		items = append(items, model.OrderItem{
			ProductID: cartItem.ProductID,
			Price:     cartItem.Product.Price, // 下單當下的價格快照
			Quantity:  cartItem.Quantity,
		})
	}

	return &model.Order{
		OrderNumber:     uuid.NewString(),
		UserID:          params.UserID,
		Status:          model.OrderStatusPending,
		Subtotal:        subtotal,
		ShippingCost:    shippingCost,
		Discount:        discount,
		TotalPrice:      subtotal.Add(shippingCost).Sub(discount),
		CouponID:        couponID,
		ShippingAddress: shippingJSON,
		BillingAddress:  billingJSON,
		ShippingMethod:  params.ShippingMethod,
		PaymentMethod:   params.PaymentMethod,
		Items:           items,
	}, nil
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orderRepo.GetOrdersByUserID(ctx, userID)
}

func (s *OrderService) GetUserOrder(ctx context.Context, userID, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.GetUserOrder(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "order not found")
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, userID, orderID uint) (*model.Order, error) {
	order, err := s.GetUserOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanCancel() {
		return nil, er.New(er.BadRequestCode, fmt.Sprintf("order in status %s cannot be cancelled", order.Status))
	}

	if err := s.orderRepo.TransitionStatus(ctx, orderID, model.OrderStatusCancelled, "cancelled by user", &userID); err != nil {
		return nil, err
	}

	return s.GetUserOrder(ctx, userID, orderID)
}

func (s *OrderService) GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
	return s.orderRepo.GetOrdersPaginated(ctx, page, pageSize)
}

func (s *OrderService) BulkTransition(ctx context.Context, orderIDs []uint, status model.OrderStatus, note string, actor uint) ([]uint, error) {
	if status != model.OrderStatusProcessing && status != model.OrderStatusShipped && status != model.OrderStatusDelivered {
		return nil, er.New(er.BadRequestCode, "unsupported bulk transition status")
	}

	updated := make([]uint, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		if err := s.orderRepo.TransitionStatus(ctx, orderID, status, note, &actor); err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				continue
			}
			return updated, err
		}
		updated = append(updated, orderID)

		switch status {
		case model.OrderStatusShipped:
			s.notifyAsync(ctx, model.EmailTypeOrderShipped, orderID)
		case model.OrderStatusDelivered:
			s.notifyAsync(ctx, model.EmailTypeOrderDelivered, orderID)
		}
	}
	return updated, nil
}

func (s *OrderService) SetTrackingNumber(ctx context.Context, orderID uint, trackingNumber string, actor uint) error {
	if trackingNumber == "" {
		return er.New(er.BadRequestCode, "tracking number is required")
	}
	err := s.orderRepo.SetTrackingNumber(ctx, orderID, trackingNumber)
	if errors.Is(err, db.ErrRecordNotFound) {
		return er.New(er.NotFoundCode, "order not found")
	}
	return err
}

// notifyAsync enqueue失敗只記錄，不影響主流程
func (s *OrderService) notifyAsync(ctx context.Context, emailType model.EmailType, orderID uint) {
	if s.notificationService == nil {
		return
	}
	if err := s.notificationService.EnqueueOrderEmail(ctx, emailType, orderID); err != nil && s.logger != nil {
		s.logger.Warn().
			Err(err).
			Uint("order_id", orderID).
			Str("email_type", string(emailType)).
			Msg("failed to enqueue order email")
	}
}
