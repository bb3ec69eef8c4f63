package db

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

type IPaymentRepository interface {
	CreatePayment(ctx context.Context, payment *model.Payment) error
	GetPaymentByIntentID(ctx context.Context, intentID string) (*model.Payment, error)
	ListPaymentsByUserID(ctx context.Context, userID uint) ([]model.Payment, error)
	MarkPaymentSucceeded(ctx context.Context, paymentID uint, paidAt time.Time) error
	MarkPaymentFailed(ctx context.Context, paymentID uint, errMsg string) error
}

type PaymentRepo struct {
	db *DbDao
}

func NewPaymentRepo(db *DbDao) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) CreatePayment(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PaymentRepo) GetPaymentByIntentID(ctx context.Context, intentID string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).Preload("Order").
		First(&payment, "payment_intent_id = ?", intentID).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// 只能看到自己訂單的付款
func (r *PaymentRepo) ListPaymentsByUserID(ctx context.Context, userID uint) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Joins("JOIN orders ON orders.order_id = payments.order_id").
		Where("orders.user_id = ?", userID).
		Order("payments.created_at DESC").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepo) MarkPaymentSucceeded(ctx context.Context, paymentID uint, paidAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("payment_id = ?", paymentID).
		Updates(map[string]interface{}{
			"status":  model.PaymentStatusSucceeded,
			"paid_at": paidAt,
		}).Error
}

// 失敗保留外部金流的錯誤訊息，訂單狀態不動
func (r *PaymentRepo) MarkPaymentFailed(ctx context.Context, paymentID uint, errMsg string) error {
	return r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("payment_id = ?", paymentID).
		Updates(map[string]interface{}{
			"status":        model.PaymentStatusFailed,
			"error_message": errMsg,
		}).Error
}
