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
)

// CreateIntentResult create_intent 的回應內容
type CreateIntentResult struct {
	ClientSecret   string `json:"client_secret"`
	PaymentID      uint   `json:"payment_id"`
	PublishableKey string `json:"publishable_key"`
}

type IPaymentService interface {
	// CreateIntent 為pending訂單建立付款意圖
	CreateIntent(ctx context.Context, userID, orderID uint) (*CreateIntentResult, error)
	ListUserPayments(ctx context.Context, userID uint) ([]model.Payment, error)
	// HandleWebhook 處理已驗證簽章的webhook原始內容
	// 簽章不合法回ErrInvalidSignature，不會改動任何狀態
	HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error
}

type PaymentService struct {
	paymentRepo         db.IPaymentRepository
	orderRepo           db.IOrderRepository
	gateway             payment.IPaymentGateway
	notificationService INotificationService
	logger              *zerolog.Logger
}

func NewPaymentService(
	paymentRepo db.IPaymentRepository,
	orderRepo db.IOrderRepository,
	gateway payment.IPaymentGateway,
	notificationService INotificationService,
	logger *zerolog.Logger,
) IPaymentService {
	if paymentRepo == nil || orderRepo == nil || gateway == nil {
		panic("payment service dependencies cannot be nil")
	}
	return &PaymentService{
		paymentRepo:         paymentRepo,
		orderRepo:           orderRepo,
		gateway:             gateway,
		notificationService: notificationService,
		logger:              logger,
	}
}

func (s *PaymentService) CreateIntent(ctx context.Context, userID, orderID uint) (*CreateIntentResult, error) {
	order, err := s.orderRepo.GetUserOrder(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "order not found")
		}
		return nil, err
	}

	if order.Status != model.OrderStatusPending {
		return nil, er.New(er.BadRequestCode, "order is already paid or cancelled")
	}

	intent, err := s.gateway.CreateIntent(ctx, order.TotalPrice, "usd", map[string]string{
		"order_id":     strconv.FormatUint(uint64(order.OrderID), 10),
		"order_number": order.OrderNumber,
	})
	if err != nil {
		if msg, ok := payment.CardErrorMessage(err); ok {
			return nil, er.New(er.BadRequestCode, msg)
		}
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	pay := &model.Payment{
		OrderID:         order.OrderID,
		PaymentIntentID: intent.ID,
		Amount:          order.TotalPrice,
		Currency:        "usd",
		Status:          model.PaymentStatusPending,
	}
	if err := s.paymentRepo.CreatePayment(ctx, pay); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	return &CreateIntentResult{
		ClientSecret:   intent.ClientSecret,
		PaymentID:      pay.PaymentID,
		PublishableKey: s.gateway.PublicKey(),
	}, nil
}

func (s *PaymentService) ListUserPayments(ctx context.Context, userID uint) ([]model.Payment, error) {
	return s.paymentRepo.ListPaymentsByUserID(ctx, userID)
}

func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.gateway.VerifyWebhook(payload, sigHeader)
	if err != nil {
		return err
	}

	switch event.Type {
	case payment.EventPaymentSucceeded:
		return s.handlePaymentSucceeded(ctx, event.IntentID)
	case payment.EventPaymentFailed:
		return s.handlePaymentFailed(ctx, event.IntentID, event.ErrorMessage)
	default:
		// 其他事件直接ack
		return nil
	}
}

func (s *PaymentService) handlePaymentSucceeded(ctx context.Context, intentID string) error {
	pay, err := s.paymentRepo.GetPaymentByIntentID(ctx, intentID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			// 不認得的intent不視為錯誤，記錄後ack避免外部一直重送
			if s.logger != nil {
				s.logger.Warn().Str("payment_intent_id", intentID).Msg("webhook for unknown payment intent")
			}
			return nil
		}
		return err
	}

	paidAt := nowFunc()
	if err := s.paymentRepo.MarkPaymentSucceeded(ctx, pay.PaymentID, paidAt); err != nil {
		return err
	}

	if err := s.orderRepo.MarkPaid(ctx, pay.OrderID, paidAt, "payment confirmed"); err != nil {
		// 訂單已結清代表此事件是重送或結帳路徑已處理過，ack且不再發信
		if errors.Is(err, db.ErrOrderNotPending) {
			if s.logger != nil {
				s.logger.Info().
					Str("payment_intent_id", intentID).
					Uint("order_id", pay.OrderID).
					Msg("succeeded event for settled order, ignoring")
			}
			return nil
		}
		return err
	}

	if s.notificationService != nil {
		if err := s.notificationService.EnqueueOrderEmail(ctx, model.EmailTypeOrderPaid, pay.OrderID); err != nil && s.logger != nil {
			s.logger.Warn().Err(err).Uint("order_id", pay.OrderID).Msg("failed to enqueue order paid email")
		}
	}
	return nil
}

func (s *PaymentService) handlePaymentFailed(ctx context.Context, intentID, errMsg string) error {
	pay, err := s.paymentRepo.GetPaymentByIntentID(ctx, intentID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			if s.logger != nil {
				s.logger.Warn().Str("payment_intent_id", intentID).Msg("webhook for unknown payment intent")
			}
			return nil
		}
		return err
	}

	// 只標記付款失敗，訂單維持pending可重試
	return s.paymentRepo.MarkPaymentFailed(ctx, pay.PaymentID, errMsg)
}
