package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.ICheckoutService
}

func NewCheckoutHandler(checkoutService service.ICheckoutService) *CheckoutHandler {
	if checkoutService == nil {
		panic("checkoutService cannot be nil")
	}
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Quote GET /checkout/quote 結帳金額試算
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	quote, err := h.checkoutService.Quote(r.Context(), payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, quote, nil)
}

// Checkout POST /checkout 建立並確認付款
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var req dto.CheckoutDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.checkoutService.Checkout(r.Context(), service.CheckoutParams{
		UserID:            payload.UserID,
		UserEmail:         payload.UPN,
		PaymentMethodID:   req.PaymentMethodID,
		ShippingAddressID: req.ShippingAddressID,
		BillingAddressID:  req.BillingAddressID,
		CouponCode:        req.CouponCode,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, result, nil)
}
