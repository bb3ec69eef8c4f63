package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/payment"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// 直接結帳路徑運費: 滿額免運，否則固定運費
var (
	freeShippingThreshold = decimal.NewFromInt(200)
	checkoutShippingCost  = decimal.NewFromInt(10)
)

// CheckoutShippingCost 滿200免運，否則10.00
func CheckoutShippingCost(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(freeShippingThreshold) {
		return decimal.Zero
	}
	return checkoutShippingCost
}

// CheckoutQuote 結帳前的金額試算
type CheckoutQuote struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Total        decimal.Decimal `json:"total"`
	PublicKey    string          `json:"stripe_public_key"`
}

// CheckoutParams 直接結帳參數，先向支付商確認扣款成功才建立訂單
type CheckoutParams struct {
	UserID            uint
	UserEmail         string
	PaymentMethodID   string
	ShippingAddressID uint
	BillingAddressID  *uint
	CouponCode        string
}

// CheckoutResult 結帳結果
// RequiresAction 為true時前端需以ClientSecret完成3DS驗證
type CheckoutResult struct {
	RequiresAction bool         `json:"requires_action"`
	ClientSecret   string       `json:"client_secret,omitempty"`
	Order          *model.Order `json:"order,omitempty"`
}

type ICheckoutService interface {
	// Quote 回傳目前購物車的結帳金額試算
	Quote(ctx context.Context, userID uint) (*CheckoutQuote, error)
	// Checkout 建立並確認付款，成功後在交易內建立訂單並清空購物車
	// 扣款失敗時購物車保持原狀
	Checkout(ctx context.Context, params CheckoutParams) (*CheckoutResult, error)
}

type CheckoutService struct {
	cartRepo     db.ICartRepository
	couponRepo   db.ICouponRepository
	orderService IOrderService
	paymentRepo  db.IPaymentRepository
	gateway      payment.IPaymentGateway
	orderRepo    db.IOrderRepository
	logger       *zerolog.Logger
}

func NewCheckoutService(
	cartRepo db.ICartRepository,
	orderRepo db.IOrderRepository,
	paymentRepo db.IPaymentRepository,
	couponRepo db.ICouponRepository,
	orderService IOrderService,
	gateway payment.IPaymentGateway,
	logger *zerolog.Logger,
) ICheckoutService {
	if cartRepo == nil || orderRepo == nil || paymentRepo == nil || couponRepo == nil || orderService == nil || gateway == nil {
		panic("checkout service dependencies cannot be nil")
	}
	return &CheckoutService{
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		couponRepo:   couponRepo,
		orderService: orderService,
		gateway:      gateway,
		logger:       logger,
	}
}

func (s *CheckoutService) Quote(ctx context.Context, userID uint) (*CheckoutQuote, error) {
	cart, err := s.nonEmptyCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	subtotal := cart.TotalPrice()
	shippingCost := CheckoutShippingCost(subtotal)

	return &CheckoutQuote{
		Subtotal:     subtotal,
		ShippingCost: shippingCost,
		Total:        subtotal.Add(shippingCost),
		PublicKey:    s.gateway.PublicKey(),
	}, nil
}

func (s *CheckoutService) Checkout(ctx context.Context, params CheckoutParams) (*CheckoutResult, error) {
	if params.PaymentMethodID == "" {
		return nil, er.New(er.BadRequestCode, "payment method is required")
	}

	cart, err := s.nonEmptyCart(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	subtotal := cart.TotalPrice()
	shippingCost := CheckoutShippingCost(subtotal)

	// 折扣碼在扣款前解析一次，收款金額與訂單總額用同一筆折扣
	discount := decimal.Zero
	var appliedCoupon *model.Coupon
	if params.CouponCode != "" {
		coupon, err := s.couponRepo.GetCouponByCode(ctx, params.CouponCode)
		if err != nil && !errors.Is(err, db.ErrRecordNotFound) {
			return nil, err
		}
		if coupon != nil && coupon.IsValid(nowFunc()) {
			discount = coupon.Discount(subtotal)
			appliedCoupon = coupon
		}
	}

	total := subtotal.Add(shippingCost).Sub(discount)

	// 先確認扣款，失敗時不動任何狀態
	intent, err := s.gateway.CreateConfirmedIntent(ctx, total, "usd", params.PaymentMethodID, map[string]string{
		"user_id":    strconv.FormatUint(uint64(params.UserID), 10),
		"user_email": params.UserEmail,
	})
	if err != nil {
		if msg, ok := payment.CardErrorMessage(err); ok {
			return nil, er.New(er.BadRequestCode, msg)
		}
		return nil, fmt.Errorf("confirm payment: %w", err)
	}

	switch intent.Status {
	case payment.IntentStatusRequiresAction:
		return &CheckoutResult{
			RequiresAction: true,
			ClientSecret:   intent.ClientSecret,
		}, nil
	case payment.IntentStatusSucceeded:
		// 付款已成功，建立訂單並記錄已完成的付款
	default:
		return nil, er.New(er.BadRequestCode, "payment failed")
	}

	order, err := s.orderService.CreateOrder(ctx, CreateOrderParams{
		UserID:               params.UserID,
		ShippingAddressID:    params.ShippingAddressID,
		BillingAddressID:     params.BillingAddressID,
		ShippingMethod:       model.ShippingStandard,
		PaymentMethod:        model.PaymentMethodCard,
		AppliedCoupon:        appliedCoupon,
		ShippingCostOverride: &shippingCost,
	})
	if err != nil {
		// 款已收但訂單未成立，需人工介入
		if s.logger != nil {
			s.logger.Error().
				Err(err).
				Str("payment_intent_id", intent.ID).
				Uint("user_id", params.UserID).
				Msg("payment captured but order creation failed")
		}
		return nil, err
	}

	paidAt := nowFunc()
	pay := &model.Payment{
		OrderID:         order.OrderID,
		PaymentIntentID: intent.ID,
		Amount:          total,
		Currency:        "usd",
		Status:          model.PaymentStatusSucceeded,
		PaidAt:          &paidAt,
	}
	if err := s.paymentRepo.CreatePayment(ctx, pay); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	if err := s.orderRepo.MarkPaid(ctx, order.OrderID, paidAt, "paid at checkout"); err != nil {
		return nil, fmt.Errorf("mark order paid: %w", err)
	}

	order, err = s.orderService.GetUserOrder(ctx, params.UserID, order.OrderID)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{Order: order}, nil
}

func (s *CheckoutService) nonEmptyCart(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := s.cartRepo.GetCartByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.BadRequestCode, "cart is empty")
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, er.New(er.BadRequestCode, "cart is empty")
	}
	return cart, nil
}
