package handler

import (
	"net/http"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/api"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
)

type CouponHandler struct {
	couponService service.ICouponService
}

func NewCouponHandler(couponService service.ICouponService) *CouponHandler {
	if couponService == nil {
		panic("couponService cannot be nil")
	}
	return &CouponHandler{couponService: couponService}
}

// Validate POST /coupons/validate
func (h *CouponHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.CouponValidateDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	coupon, err := h.couponService.ValidateCoupon(r.Context(), req.Code)
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, coupon, nil)
}

// List GET /coupons (staff)
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponService.GetCoupons(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, coupons, nil)
}

// Create POST /coupons (staff)
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CouponDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	coupon := couponFromDTO(&req)
	if err := h.couponService.CreateCoupon(r.Context(), coupon); err != nil {
		respondError(w, err)
		return
	}
	api.CreatedJSON(w, coupon)
}

// Update PUT /coupons/{id} (staff)
func (h *CouponHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.CouponDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	coupon := couponFromDTO(&req)
	coupon.CouponID = id
	if err := h.couponService.UpdateCoupon(r.Context(), coupon); err != nil {
		respondError(w, err)
		return
	}
	api.SuccessJSON(w, coupon, nil)
}

// Delete DELETE /coupons/{id} (staff)
func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.couponService.DeleteCoupon(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	api.NoContent(w)
}

func couponFromDTO(d *dto.CouponDTO) *model.Coupon {
	return &model.Coupon{
		Code:          d.Code,
		DiscountType:  model.DiscountType(d.DiscountType),
		DiscountValue: d.DiscountValue,
		ValidFrom:     d.ValidFrom,
		ValidTo:       d.ValidTo,
		Active:        d.Active,
		UsageLimit:    d.UsageLimit,
	}
}
