package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/mq"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeConsumer struct{}

func (c *fakeConsumer) Consume(ctx context.Context) (<-chan mq.Message, <-chan error) {
	return nil, nil
}
func (c *fakeConsumer) CommitMessages(ctx context.Context, msgs ...mq.Message) error { return nil }
func (c *fakeConsumer) Close() error                                                 { return nil }

type fakeOrderRepo struct {
	db.IOrderRepository
	orders map[uint]*model.Order
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, db.ErrRecordNotFound
	}
	return order, nil
}

type fakeEmailLogRepo struct {
	created   []*model.EmailLog
	sent      []uint
	failed    []uint
	failedMsg string
}

func (r *fakeEmailLogRepo) CreateEmailLog(ctx context.Context, emailLog *model.EmailLog) error {
	emailLog.EmailLogID = uint(len(r.created) + 1)
	r.created = append(r.created, emailLog)
	return nil
}

func (r *fakeEmailLogRepo) MarkEmailSent(ctx context.Context, id uint, sentAt time.Time) error {
	r.sent = append(r.sent, id)
	return nil
}

func (r *fakeEmailLogRepo) MarkEmailFailed(ctx context.Context, id uint, errMsg string) error {
	r.failed = append(r.failed, id)
	r.failedMsg = errMsg
	return nil
}

func (r *fakeEmailLogRepo) ListEmailLogsByUserID(ctx context.Context, userID uint) ([]model.EmailLog, error) {
	return nil, nil
}

type fakeSender struct {
	sent    []string
	sendErr error
}

func (s *fakeSender) SendEmail(subject, content string, to, cc, bcc, attachFiles []string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, to...)
	return nil
}

func testOrder() *model.Order {
	return &model.Order{
		OrderID:     3,
		UserID:      42,
		OrderNumber: "a1b2c3d4",
		Status:      model.OrderStatusPaid,
		TotalPrice:  decimal.NewFromFloat(199.50),
		User:        &model.User{UserID: 42, UserName: "royce", Email: "royce@example.com"},
	}
}

func taskMessage(t *testing.T, task service.EmailTask) mq.Message {
	t.Helper()
	value, err := json.Marshal(task)
	require.NoError(t, err)
	return mq.Message{Value: value}
}

func newTestWorker(orderRepo db.IOrderRepository, emailLogRepo db.IEmailLogRepository, sender *fakeSender) *EmailWorker {
	logger := zerolog.Nop()
	return NewEmailWorker(&fakeConsumer{}, orderRepo, emailLogRepo, sender, &logger)
}

func TestHandleMessageOrderEmail(t *testing.T) {
	orderRepo := &fakeOrderRepo{orders: map[uint]*model.Order{3: testOrder()}}
	emailLogRepo := &fakeEmailLogRepo{}
	sender := &fakeSender{}
	w := newTestWorker(orderRepo, emailLogRepo, sender)

	msg := taskMessage(t, service.EmailTask{
		TaskID:  uuid.NewString(),
		Type:    model.EmailTypeOrderPaid,
		OrderID: 3,
	})
	w.handleMessage(context.Background(), msg)

	require.Equal(t, []string{"royce@example.com"}, sender.sent)
	require.Len(t, emailLogRepo.created, 1)
	require.Equal(t, model.EmailTypeOrderPaid, emailLogRepo.created[0].EmailType)
	require.Equal(t, []uint{1}, emailLogRepo.sent)
	require.Empty(t, emailLogRepo.failed)
}

func TestHandleMessageDeliveryFailure(t *testing.T) {
	orderRepo := &fakeOrderRepo{orders: map[uint]*model.Order{3: testOrder()}}
	emailLogRepo := &fakeEmailLogRepo{}
	sender := &fakeSender{sendErr: errors.New("smtp timeout")}
	w := newTestWorker(orderRepo, emailLogRepo, sender)

	msg := taskMessage(t, service.EmailTask{
		TaskID:  uuid.NewString(),
		Type:    model.EmailTypeOrderCreated,
		OrderID: 3,
	})
	w.handleMessage(context.Background(), msg)

	// 失敗只回寫紀錄，不重送
	require.Len(t, emailLogRepo.created, 1)
	require.Equal(t, []uint{1}, emailLogRepo.failed)
	require.Equal(t, "smtp timeout", emailLogRepo.failedMsg)
	require.Empty(t, emailLogRepo.sent)
}

func TestHandleMessageOrderMissing(t *testing.T) {
	orderRepo := &fakeOrderRepo{orders: map[uint]*model.Order{}}
	emailLogRepo := &fakeEmailLogRepo{}
	sender := &fakeSender{}
	w := newTestWorker(orderRepo, emailLogRepo, sender)

	msg := taskMessage(t, service.EmailTask{
		TaskID:  uuid.NewString(),
		Type:    model.EmailTypeOrderShipped,
		OrderID: 99,
	})
	w.handleMessage(context.Background(), msg)

	// 訂單不存在時不寄信也不留紀錄
	require.Empty(t, sender.sent)
	require.Empty(t, emailLogRepo.created)
}

func TestHandleMessageRegistrationEmail(t *testing.T) {
	emailLogRepo := &fakeEmailLogRepo{}
	sender := &fakeSender{}
	w := newTestWorker(&fakeOrderRepo{}, emailLogRepo, sender)

	msg := taskMessage(t, service.EmailTask{
		TaskID:    uuid.NewString(),
		Type:      model.EmailTypeRegistration,
		Recipient: "new@example.com",
		UserID:    7,
	})
	w.handleMessage(context.Background(), msg)

	require.Equal(t, []string{"new@example.com"}, sender.sent)
	require.Len(t, emailLogRepo.created, 1)
	require.Equal(t, model.EmailTypeRegistration, emailLogRepo.created[0].EmailType)
}

func TestHandleMessageMalformedTask(t *testing.T) {
	emailLogRepo := &fakeEmailLogRepo{}
	sender := &fakeSender{}
	w := newTestWorker(&fakeOrderRepo{}, emailLogRepo, sender)

	w.handleMessage(context.Background(), mq.Message{Value: []byte("not json")})

	require.Empty(t, sender.sent)
	require.Empty(t, emailLogRepo.created)
}
