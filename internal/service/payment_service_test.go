package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/payment"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakeGateway 以預錄事件取代stripe
type fakeGateway struct {
	event         *payment.Event
	verifyErr     error
	confirmStatus string // CreateConfirmedIntent回傳的狀態，空值視為succeeded
	confirmAmount decimal.Decimal
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*payment.Intent, error) {
	return &payment.Intent{ID: "pi_test", ClientSecret: "secret_test", Currency: currency}, nil
}

func (g *fakeGateway) CreateConfirmedIntent(ctx context.Context, amount decimal.Decimal, currency, paymentMethodID string, metadata map[string]string) (*payment.Intent, error) {
	g.confirmAmount = amount
	status := g.confirmStatus
	if status == "" {
		status = payment.IntentStatusSucceeded
	}
	return &payment.Intent{ID: "pi_test", ClientSecret: "secret_test", Status: status, Currency: currency}, nil
}

func (g *fakeGateway) VerifyWebhook(payload []byte, sigHeader string) (*payment.Event, error) {
	if g.verifyErr != nil {
		return nil, g.verifyErr
	}
	return g.event, nil
}

func (g *fakeGateway) PublicKey() string { return "pk_test" }

// fakePaymentRepo 記錄狀態轉移呼叫
type fakePaymentRepo struct {
	payments      map[string]*model.Payment
	succeededWith []uint
	failedWith    []uint
	failedMsg     string
}

func newFakePaymentRepo(payments ...*model.Payment) *fakePaymentRepo {
	m := make(map[string]*model.Payment)
	for _, p := range payments {
		m[p.PaymentIntentID] = p
	}
	return &fakePaymentRepo{payments: m}
}

func (r *fakePaymentRepo) CreatePayment(ctx context.Context, p *model.Payment) error {
	r.payments[p.PaymentIntentID] = p
	return nil
}

func (r *fakePaymentRepo) GetPaymentByIntentID(ctx context.Context, intentID string) (*model.Payment, error) {
	p, ok := r.payments[intentID]
	if !ok {
		return nil, db.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePaymentRepo) ListPaymentsByUserID(ctx context.Context, userID uint) ([]model.Payment, error) {
	return nil, nil
}

func (r *fakePaymentRepo) MarkPaymentSucceeded(ctx context.Context, paymentID uint, paidAt time.Time) error {
	r.succeededWith = append(r.succeededWith, paymentID)
	return nil
}

func (r *fakePaymentRepo) MarkPaymentFailed(ctx context.Context, paymentID uint, errMsg string) error {
	r.failedWith = append(r.failedWith, paymentID)
	r.failedMsg = errMsg
	return nil
}

// fakeOrderRepo 只記錄MarkPaid呼叫
type fakeOrderRepo struct {
	db.IOrderRepository
	paidOrders  []uint
	markPaidErr error
}

func (r *fakeOrderRepo) MarkPaid(ctx context.Context, orderID uint, paidAt time.Time, note string) error {
	if r.markPaidErr != nil {
		return r.markPaidErr
	}
	r.paidOrders = append(r.paidOrders, orderID)
	return nil
}

type fakeNotifier struct {
	enqueued []model.EmailType
}

func (n *fakeNotifier) EnqueueOrderEmail(ctx context.Context, emailType model.EmailType, orderID uint) error {
	n.enqueued = append(n.enqueued, emailType)
	return nil
}

func (n *fakeNotifier) EnqueueRegistrationEmail(ctx context.Context, userID uint, recipient string) error {
	n.enqueued = append(n.enqueued, model.EmailTypeRegistration)
	return nil
}

func TestHandleWebhookPaymentSucceeded(t *testing.T) {
	pay := &model.Payment{PaymentID: 7, OrderID: 3, PaymentIntentID: "pi_abc", Status: model.PaymentStatusPending}
	paymentRepo := newFakePaymentRepo(pay)
	orderRepo := &fakeOrderRepo{}
	notifier := &fakeNotifier{}
	gateway := &fakeGateway{event: &payment.Event{Type: payment.EventPaymentSucceeded, IntentID: "pi_abc"}}

	svc := NewPaymentService(paymentRepo, orderRepo, gateway, notifier, nil)

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)
	require.Equal(t, []uint{7}, paymentRepo.succeededWith)
	require.Equal(t, []uint{3}, orderRepo.paidOrders)
	require.Equal(t, []model.EmailType{model.EmailTypeOrderPaid}, notifier.enqueued)
}

func TestHandleWebhookSucceededForSettledOrder(t *testing.T) {
	// 直接結帳後訂單已是paid，之後送達的succeeded事件要ack且不再發信
	pay := &model.Payment{PaymentID: 7, OrderID: 3, PaymentIntentID: "pi_abc", Status: model.PaymentStatusSucceeded}
	paymentRepo := newFakePaymentRepo(pay)
	orderRepo := &fakeOrderRepo{markPaidErr: db.ErrOrderNotPending}
	notifier := &fakeNotifier{}
	gateway := &fakeGateway{event: &payment.Event{Type: payment.EventPaymentSucceeded, IntentID: "pi_abc"}}

	svc := NewPaymentService(paymentRepo, orderRepo, gateway, notifier, nil)

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)
	require.Empty(t, orderRepo.paidOrders)
	require.Empty(t, notifier.enqueued)
}

func TestHandleWebhookPaymentFailed(t *testing.T) {
	pay := &model.Payment{PaymentID: 7, OrderID: 3, PaymentIntentID: "pi_abc", Status: model.PaymentStatusPending}
	paymentRepo := newFakePaymentRepo(pay)
	orderRepo := &fakeOrderRepo{}
	notifier := &fakeNotifier{}
	gateway := &fakeGateway{event: &payment.Event{
		Type:         payment.EventPaymentFailed,
		IntentID:     "pi_abc",
		ErrorMessage: "card declined",
	}}

	svc := NewPaymentService(paymentRepo, orderRepo, gateway, notifier, nil)

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)

	// 失敗只更新付款狀態，訂單維持原狀也不發信
	require.Equal(t, []uint{7}, paymentRepo.failedWith)
	require.Equal(t, "card declined", paymentRepo.failedMsg)
	require.Empty(t, orderRepo.paidOrders)
	require.Empty(t, notifier.enqueued)
}

func TestHandleWebhookUnknownIntent(t *testing.T) {
	paymentRepo := newFakePaymentRepo()
	orderRepo := &fakeOrderRepo{}
	gateway := &fakeGateway{event: &payment.Event{Type: payment.EventPaymentSucceeded, IntentID: "pi_unknown"}}

	svc := NewPaymentService(paymentRepo, orderRepo, gateway, &fakeNotifier{}, nil)

	// 不認得的intent以成功ack，避免外部一直重送
	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)
	require.Empty(t, paymentRepo.succeededWith)
	require.Empty(t, orderRepo.paidOrders)
}

func TestHandleWebhookInvalidSignature(t *testing.T) {
	paymentRepo := newFakePaymentRepo()
	gateway := &fakeGateway{verifyErr: payment.ErrInvalidSignature}

	svc := NewPaymentService(paymentRepo, &fakeOrderRepo{}, gateway, &fakeNotifier{}, nil)

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "bad-sig")
	require.ErrorIs(t, err, payment.ErrInvalidSignature)
}

func TestHandleWebhookIgnoresOtherEvents(t *testing.T) {
	paymentRepo := newFakePaymentRepo()
	gateway := &fakeGateway{event: &payment.Event{Type: payment.EventType("charge.refunded"), IntentID: "pi_abc"}}

	svc := NewPaymentService(paymentRepo, &fakeOrderRepo{}, gateway, &fakeNotifier{}, nil)

	err := svc.HandleWebhook(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)
	require.Empty(t, paymentRepo.succeededWith)
	require.Empty(t, paymentRepo.failedWith)
}
