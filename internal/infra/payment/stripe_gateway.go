package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

var (
	// ErrInvalidSignature 表示 webhook 簽章驗證失敗
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// EventType 支付事件類型
type EventType string

const (
	EventPaymentSucceeded EventType = "payment_intent.succeeded"
	EventPaymentFailed    EventType = "payment_intent.payment_failed"
)

// Intent 代表一筆已在支付提供商建立的付款意圖
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64 // 最小貨幣單位(分)
	Currency     string
	Status       string
}

// Intent 狀態，見 stripe payment intent 生命週期
const (
	IntentStatusSucceeded      = "succeeded"
	IntentStatusRequiresAction = "requires_action"
)

// Event 代表一筆已驗證的 webhook 事件
type Event struct {
	Type         EventType
	IntentID     string
	ErrorMessage string // payment_intent.payment_failed 才有值
}

// IPaymentGateway 支付閘道介面
type IPaymentGateway interface {
	// CreateIntent 建立付款意圖，金額以主貨幣單位傳入，內部轉換為最小單位
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*Intent, error)
	// CreateConfirmedIntent 建立並立即確認付款意圖，用於直接結帳流程
	CreateConfirmedIntent(ctx context.Context, amount decimal.Decimal, currency string, paymentMethodID string, metadata map[string]string) (*Intent, error)
	// VerifyWebhook 驗證 webhook 簽章並解析事件
	VerifyWebhook(payload []byte, sigHeader string) (*Event, error)
	// PublicKey 回傳前端用的 publishable key
	PublicKey() string
}

type StripeGateway struct {
	sc            *client.API
	publicKey     string
	webhookSecret string
}

func NewStripeGateway(secretKey, publicKey, webhookSecret string) IPaymentGateway {
	if secretKey == "" {
		panic("stripe secret key is required")
	}

	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &StripeGateway{
		sc:            sc,
		publicKey:     publicKey,
		webhookSecret: webhookSecret,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*Intent, error) {
	// Stripe 金額使用最小貨幣單位
	minorUnits := amount.Shift(2).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minorUnits),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		Status:       string(intent.Status),
	}, nil
}

func (g *StripeGateway) CreateConfirmedIntent(ctx context.Context, amount decimal.Decimal, currency string, paymentMethodID string, metadata map[string]string) (*Intent, error) {
	minorUnits := amount.Shift(2).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(minorUnits),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create confirmed payment intent: %w", err)
	}

	return &Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     string(intent.Currency),
		Status:       string(intent.Status),
	}, nil
}

func (g *StripeGateway) VerifyWebhook(payload []byte, sigHeader string) (*Event, error) {
	stripeEvent, err := webhook.ConstructEvent(payload, sigHeader, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	evt := &Event{
		Type: EventType(stripeEvent.Type),
	}

	switch evt.Type {
	case EventPaymentSucceeded, EventPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(stripeEvent.Data.Raw, &intent); err != nil {
			return nil, fmt.Errorf("parse payment intent from event: %w", err)
		}
		evt.IntentID = intent.ID
		if intent.LastPaymentError != nil {
			evt.ErrorMessage = intent.LastPaymentError.Msg
		}
	}

	return evt, nil
}

func (g *StripeGateway) PublicKey() string {
	return g.publicKey
}

// CardErrorMessage 取出卡片被拒等可對使用者顯示的錯誤訊息
func CardErrorMessage(err error) (string, bool) {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		return stripeErr.Msg, true
	}
	return "", false
}
