package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"gorm.io/gorm"
)

type ICouponRepository interface {
	CreateCoupon(ctx context.Context, coupon *model.Coupon) error
	GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error)
	GetAllCoupons(ctx context.Context) ([]model.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *model.Coupon) error
	DeleteCoupon(ctx context.Context, id uint) error
}

type CouponRepo struct {
	db *DbDao
}

func NewCouponRepo(db *DbDao) *CouponRepo {
	return &CouponRepo{db: db}
}

func (r *CouponRepo) CreateCoupon(ctx context.Context, coupon *model.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *CouponRepo) GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.db.WithContext(ctx).First(&coupon, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepo) GetAllCoupons(ctx context.Context) ([]model.Coupon, error) {
	var coupons []model.Coupon
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

func (r *CouponRepo) UpdateCoupon(ctx context.Context, coupon *model.Coupon) error {
	return r.db.WithContext(ctx).Save(coupon).Error
}

func (r *CouponRepo) DeleteCoupon(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("coupon_id = ?", id).Delete(&model.Coupon{}).Error
}

// incrementCouponUsage 供訂單交易內使用，times_used每張訂單恰好加一
func incrementCouponUsage(tx *DbDao, couponID uint) error {
	return tx.Model(&model.Coupon{}).
		Where("coupon_id = ?", couponID).
		Update("times_used", gorm.Expr("times_used + 1")).Error
}
