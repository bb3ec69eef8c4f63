package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/payment"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/rs/zerolog"
)

// webhook內容上限，防止惡意的大量資料
const maxWebhookBodyBytes = 64 * 1024

type PaymentHandler struct {
	paymentService service.IPaymentService
	logger         *zerolog.Logger
}

func NewPaymentHandler(paymentService service.IPaymentService, logger *zerolog.Logger) *PaymentHandler {
	if paymentService == nil {
		panic("paymentService cannot be nil")
	}
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreateIntent POST /payments/create_intent
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var req dto.CreateIntentDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.paymentService.CreateIntent(r.Context(), payload.UserID, req.OrderID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, result)
}

// List GET /payments 取得自己的付款紀錄
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	payments, err := h.paymentService.ListUserPayments(r.Context(), payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, payments, nil)
}

// StripeWebhook POST /payments/webhook
// 簽章驗證失敗回400，其餘情況一律回200避免支付商重送
func (h *PaymentHandler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		respondError(w, er.New(er.BadRequestCode, "failed to read webhook body"))
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	if err := h.paymentService.HandleWebhook(r.Context(), body, sigHeader); err != nil {
		if errors.Is(err, payment.ErrInvalidSignature) {
			respondError(w, er.New(er.BadRequestCode, "invalid webhook signature"))
			return
		}
		if h.logger != nil {
			h.logger.Error().Err(err).Msg("webhook processing failed")
		}
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, map[string]string{"status": "received"}, nil)
}
