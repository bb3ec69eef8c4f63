package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/mq"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EmailTask 為丟進 kafka 的信件任務
// OrderID 僅訂單相關類型有值，registration 類型以 Recipient/UserID 為準
type EmailTask struct {
	TaskID    string          `json:"task_id"`
	Type      model.EmailType `json:"type"`
	OrderID   uint            `json:"order_id,omitempty"`
	Recipient string          `json:"recipient,omitempty"`
	UserID    uint            `json:"user_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type INotificationService interface {
	// EnqueueOrderEmail 發送訂單相關信件任務，同步produce但不等待信件送達
	EnqueueOrderEmail(ctx context.Context, emailType model.EmailType, orderID uint) error
	// EnqueueRegistrationEmail 發送註冊歡迎信任務
	EnqueueRegistrationEmail(ctx context.Context, userID uint, recipient string) error
}

type NotificationService struct {
	producer mq.Producer
	logger   *zerolog.Logger
}

func NewNotificationService(producer mq.Producer, logger *zerolog.Logger) INotificationService {
	if producer == nil {
		panic("producer cannot be nil")
	}
	return &NotificationService{
		producer: producer,
		logger:   logger,
	}
}

func (n *NotificationService) EnqueueOrderEmail(ctx context.Context, emailType model.EmailType, orderID uint) error {
	task := EmailTask{
		TaskID:    uuid.NewString(),
		Type:      emailType,
		OrderID:   orderID,
		CreatedAt: time.Now(),
	}
	return n.enqueue(ctx, task, fmt.Sprintf("order-%d", orderID))
}

func (n *NotificationService) EnqueueRegistrationEmail(ctx context.Context, userID uint, recipient string) error {
	task := EmailTask{
		TaskID:    uuid.NewString(),
		Type:      model.EmailTypeRegistration,
		Recipient: recipient,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	return n.enqueue(ctx, task, fmt.Sprintf("user-%d", userID))
}

// 以order/user 為key，同一實體的信件保持順序
func (n *NotificationService) enqueue(ctx context.Context, task EmailTask, key string) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal email task: %w", err)
	}

	err = n.producer.Produce(ctx, []mq.Message{{
		Key:   []byte(key),
		Value: payload,
		Time:  task.CreatedAt,
	}})
	if err != nil {
		return fmt.Errorf("enqueue email task: %w", err)
	}

	if n.logger != nil {
		n.logger.Info().
			Str("task_id", task.TaskID).
			Str("type", string(task.Type)).
			Uint("order_id", task.OrderID).
			Msg("email task enqueued")
	}
	return nil
}
