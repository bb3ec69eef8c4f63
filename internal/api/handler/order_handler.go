package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{orderService: orderService}
}

// List GET /orders 取得自己的訂單
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	orders, err := h.orderService.GetUserOrders(r.Context(), payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, orders, nil)
}

// Get GET /orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetUserOrder(r.Context(), payload.UserID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, order, nil)
}

// Create POST /orders 由購物車建立訂單
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var req dto.OrderCreateDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), service.CreateOrderParams{
		UserID:            payload.UserID,
		ShippingAddressID: req.ShippingAddressID,
		BillingAddressID:  req.BillingAddressID,
		ShippingMethod:    model.ShippingMethod(req.ShippingMethod),
		PaymentMethod:     model.PaymentMethod(req.PaymentMethod),
		CouponCode:        req.CouponCode,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, order)
}

// Cancel POST /orders/{id}/cancel
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orderService.CancelOrder(r.Context(), payload.UserID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, order, nil)
}

// AdminList GET /admin/orders (staff)
func (h *OrderHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := queryPaging(r)
	orders, total, err := h.orderService.GetOrdersPaginated(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, orders, api.NewPageMeta(page, pageSize, total))
}

// BulkStatus POST /admin/orders/bulk_status (staff)
// 回傳實際完成轉移的訂單編號，不存在的編號會被略過
func (h *OrderHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var req dto.BulkStatusDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.orderService.BulkTransition(r.Context(), req.OrderIDs, model.OrderStatus(req.Status), req.Note, payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, map[string]any{"updated_ids": updated}, nil)
}

// SetTracking PUT /admin/orders/{id}/tracking (staff)
func (h *OrderHandler) SetTracking(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.SetTrackingDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.orderService.SetTrackingNumber(r.Context(), id, req.TrackingNumber, payload.UserID); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}
