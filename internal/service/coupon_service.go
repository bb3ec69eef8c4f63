package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
)

type ICouponService interface {
	// ValidateCoupon 檢查折扣碼，不存在回404，存在但失效回400
	ValidateCoupon(ctx context.Context, code string) (*model.Coupon, error)
	GetCoupons(ctx context.Context) ([]model.Coupon, error)
	CreateCoupon(ctx context.Context, coupon *model.Coupon) error
	UpdateCoupon(ctx context.Context, coupon *model.Coupon) error
	DeleteCoupon(ctx context.Context, id uint) error
}

type CouponService struct {
	couponRepo db.ICouponRepository
}

func NewCouponService(couponRepo db.ICouponRepository) ICouponService {
	if couponRepo == nil {
		panic("couponRepo cannot be nil")
	}
	return &CouponService{couponRepo: couponRepo}
}

func (s *CouponService) ValidateCoupon(ctx context.Context, code string) (*model.Coupon, error) {
	if code == "" {
		return nil, er.New(er.BadRequestCode, "coupon code is required")
	}

	coupon, err := s.couponRepo.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, er.New(er.NotFoundCode, "coupon not found")
		}
		return nil, err
	}

	if !coupon.IsValid(time.Now()) {
		return nil, er.New(er.BadRequestCode, "coupon is not valid")
	}

	return coupon, nil
}

func (s *CouponService) GetCoupons(ctx context.Context) ([]model.Coupon, error) {
	return s.couponRepo.GetAllCoupons(ctx)
}

func (s *CouponService) CreateCoupon(ctx context.Context, coupon *model.Coupon) error {
	if coupon.Code == "" {
		return er.New(er.BadRequestCode, "coupon code is required")
	}
	if coupon.DiscountType != model.DiscountPercentage && coupon.DiscountType != model.DiscountFixed {
		return er.New(er.BadRequestCode, "invalid discount type")
	}
	if coupon.ValidTo.Before(coupon.ValidFrom) {
		return er.New(er.BadRequestCode, "valid_to must not precede valid_from")
	}

	if err := s.couponRepo.CreateCoupon(ctx, coupon); err != nil {
		if errors.Is(err, db.ErrDuplicateEntry) {
			return er.New(er.ConflictCode, "coupon code already exists")
		}
		return err
	}
	return nil
}

func (s *CouponService) UpdateCoupon(ctx context.Context, coupon *model.Coupon) error {
	return s.couponRepo.UpdateCoupon(ctx, coupon)
}

func (s *CouponService) DeleteCoupon(ctx context.Context, id uint) error {
	return s.couponRepo.DeleteCoupon(ctx, id)
}
