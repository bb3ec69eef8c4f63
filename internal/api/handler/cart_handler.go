package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{cartService: cartService}
}

// GetCart GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	cart, err := h.cartService.GetCart(r.Context(), payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ConvertCartToResponse(cart), nil)
}

// AddItem POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	var req dto.AddCartItemDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.cartService.AddItem(r.Context(), payload.UserID, req.ProductID, req.Quantity); err != nil {
		respondError(w, err)
		return
	}

	cart, err := h.cartService.GetCart(r.Context(), payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ConvertCartToResponse(cart), nil)
}

// UpdateItem PUT /cart/items/{itemID}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}

	var req dto.UpdateCartItemDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.cartService.UpdateItemQuantity(r.Context(), payload.UserID, itemID, req.Quantity); err != nil {
		respondError(w, err)
		return
	}

	cart, err := h.cartService.GetCart(r.Context(), payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ConvertCartToResponse(cart), nil)
}

// RemoveItem DELETE /cart/items/{itemID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)

	itemID, ok := pathID(w, r, "itemID")
	if !ok {
		return
	}

	if err := h.cartService.RemoveItem(r.Context(), payload.UserID, itemID); err != nil {
		respondError(w, err)
		return
	}

	cart, err := h.cartService.GetCart(r.Context(), payload.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ConvertCartToResponse(cart), nil)
}

// ClearCart DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	payload := currentPayload(r)
	if err := h.cartService.ClearCart(r.Context(), payload.UserID); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}
