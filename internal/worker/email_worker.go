package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/mail"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/mq"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/rs/zerolog"
)

// EmailWorker 消費信件任務並寄出
// 每次嘗試都留下EmailLog，失敗只記錄不重送
type EmailWorker struct {
	consumer     mq.Consumer
	orderRepo    db.IOrderRepository
	emailLogRepo db.IEmailLogRepository
	sender       mail.EmailSender
	logger       *zerolog.Logger
}

func NewEmailWorker(
	consumer mq.Consumer,
	orderRepo db.IOrderRepository,
	emailLogRepo db.IEmailLogRepository,
	sender mail.EmailSender,
	logger *zerolog.Logger,
) *EmailWorker {
	if consumer == nil || orderRepo == nil || emailLogRepo == nil || sender == nil {
		panic("email worker dependencies cannot be nil")
	}
	return &EmailWorker{
		consumer:     consumer,
		orderRepo:    orderRepo,
		emailLogRepo: emailLogRepo,
		sender:       sender,
		logger:       logger,
	}
}

// Run 阻塞直到ctx取消或消費者發生致命錯誤
func (w *EmailWorker) Run(ctx context.Context) error {
	msgCh, errCh := w.consumer.Consume(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errCh:
			var consumerErr *mq.ConsumerError
			if errors.As(err, &consumerErr) && consumerErr.Fatal {
				return fmt.Errorf("email worker consumer: %w", err)
			}
			w.logger.Warn().Err(err).Msg("email worker temporary consumer error")
		case msg, ok := <-msgCh:
			if !ok {
				return nil
			}
			w.handleMessage(ctx, msg)
			if err := w.consumer.CommitMessages(ctx, msg); err != nil {
				w.logger.Warn().Err(err).Msg("failed to commit email task")
			}
		}
	}
}

// handleMessage 處理失敗不回傳錯誤，任務一律ack避免卡住整個partition
func (w *EmailWorker) handleMessage(ctx context.Context, msg mq.Message) {
	var task service.EmailTask
	if err := json.Unmarshal(msg.Value, &task); err != nil {
		w.logger.Warn().Err(err).Msg("malformed email task, skipping")
		return
	}

	logger := w.logger.With().
		Str("task_id", task.TaskID).
		Str("type", string(task.Type)).
		Logger()

	switch task.Type {
	case model.EmailTypeRegistration:
		w.sendRegistrationEmail(ctx, &logger, task)
	case model.EmailTypeOrderCreated, model.EmailTypeOrderPaid,
		model.EmailTypeOrderShipped, model.EmailTypeOrderDelivered:
		w.sendOrderEmail(ctx, &logger, task)
	default:
		logger.Warn().Msg("unknown email task type, skipping")
	}
}

func (w *EmailWorker) sendOrderEmail(ctx context.Context, logger *zerolog.Logger, task service.EmailTask) {
	order, err := w.orderRepo.GetOrderByID(ctx, task.OrderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			// 訂單不見了就只記錄後ack
			logger.Warn().Uint("order_id", task.OrderID).Msg("order not found for email task")
			return
		}
		logger.Error().Err(err).Uint("order_id", task.OrderID).Msg("failed to load order for email task")
		return
	}
	if order.User == nil {
		logger.Warn().Uint("order_id", task.OrderID).Msg("order has no user loaded, skipping email")
		return
	}

	subject, body, err := service.RenderOrderEmail(task.Type, order)
	if err != nil {
		logger.Error().Err(err).Msg("failed to render order email")
		return
	}

	w.deliver(ctx, logger, task, order.User.Email, &order.UserID, subject, body)
}

func (w *EmailWorker) sendRegistrationEmail(ctx context.Context, logger *zerolog.Logger, task service.EmailTask) {
	subject, body, err := service.RenderRegistrationEmail(service.RegistrationEmailData{
		UserName: task.Recipient,
		Email:    task.Recipient,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to render registration email")
		return
	}

	var userID *uint
	if task.UserID != 0 {
		userID = &task.UserID
	}
	w.deliver(ctx, logger, task, task.Recipient, userID, subject, body)
}

// deliver 先寫pending紀錄再寄信，結果回寫同一筆紀錄
func (w *EmailWorker) deliver(ctx context.Context, logger *zerolog.Logger, task service.EmailTask, recipient string, userID *uint, subject, body string) {
	emailLog := &model.EmailLog{
		Recipient: recipient,
		UserID:    userID,
		EmailType: task.Type,
		Subject:   subject,
		Status:    model.EmailStatusPending,
	}
	if err := w.emailLogRepo.CreateEmailLog(ctx, emailLog); err != nil {
		logger.Error().Err(err).Msg("failed to create email log")
		return
	}

	if err := w.sender.SendEmail(subject, body, []string{recipient}, nil, nil, nil); err != nil {
		logger.Warn().Err(err).Str("recipient", recipient).Msg("email delivery failed")
		if markErr := w.emailLogRepo.MarkEmailFailed(ctx, emailLog.EmailLogID, err.Error()); markErr != nil {
			logger.Error().Err(markErr).Msg("failed to mark email log failed")
		}
		return
	}

	if err := w.emailLogRepo.MarkEmailSent(ctx, emailLog.EmailLogID, nowFunc()); err != nil {
		logger.Error().Err(err).Msg("failed to mark email log sent")
		return
	}
	logger.Info().Str("recipient", recipient).Msg("email sent")
}
