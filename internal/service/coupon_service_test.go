package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/er"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeCouponRepo struct {
	coupons map[string]*model.Coupon
	created []*model.Coupon
}

func newFakeCouponRepo(coupons ...*model.Coupon) *fakeCouponRepo {
	m := make(map[string]*model.Coupon)
	for _, c := range coupons {
		m[c.Code] = c
	}
	return &fakeCouponRepo{coupons: m}
}

func (r *fakeCouponRepo) CreateCoupon(ctx context.Context, coupon *model.Coupon) error {
	if _, ok := r.coupons[coupon.Code]; ok {
		return db.ErrDuplicateEntry
	}
	r.coupons[coupon.Code] = coupon
	r.created = append(r.created, coupon)
	return nil
}

func (r *fakeCouponRepo) GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error) {
	c, ok := r.coupons[code]
	if !ok {
		return nil, db.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCouponRepo) GetAllCoupons(ctx context.Context) ([]model.Coupon, error) {
	var out []model.Coupon
	for _, c := range r.coupons {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCouponRepo) UpdateCoupon(ctx context.Context, coupon *model.Coupon) error { return nil }
func (r *fakeCouponRepo) DeleteCoupon(ctx context.Context, id uint) error              { return nil }

func activeCoupon(code string) *model.Coupon {
	now := time.Now()
	return &model.Coupon{
		Code:          code,
		DiscountType:  model.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		ValidFrom:     now.Add(-time.Hour),
		ValidTo:       now.Add(time.Hour),
		Active:        true,
	}
}

func TestValidateCoupon(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo(activeCoupon("SAVE10")))

	coupon, err := svc.ValidateCoupon(context.Background(), "SAVE10")
	require.NoError(t, err)
	require.Equal(t, "SAVE10", coupon.Code)
}

func TestValidateCouponEmptyCode(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo())

	_, err := svc.ValidateCoupon(context.Background(), "")
	appErr := er.AsAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, er.BadRequestCode, appErr.Code)
}

func TestValidateCouponNotFound(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo())

	_, err := svc.ValidateCoupon(context.Background(), "NOPE")
	appErr := er.AsAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, er.NotFoundCode, appErr.Code)
}

func TestValidateCouponExpired(t *testing.T) {
	expired := activeCoupon("OLD10")
	expired.ValidTo = time.Now().Add(-time.Minute)
	svc := NewCouponService(newFakeCouponRepo(expired))

	_, err := svc.ValidateCoupon(context.Background(), "OLD10")
	appErr := er.AsAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, er.BadRequestCode, appErr.Code)
}

func TestCreateCouponDuplicate(t *testing.T) {
	repo := newFakeCouponRepo(activeCoupon("SAVE10"))
	svc := NewCouponService(repo)

	err := svc.CreateCoupon(context.Background(), activeCoupon("SAVE10"))
	appErr := er.AsAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, er.ConflictCode, appErr.Code)
}

func TestCreateCouponInvalidWindow(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo())

	coupon := activeCoupon("SAVE10")
	coupon.ValidFrom, coupon.ValidTo = coupon.ValidTo, coupon.ValidFrom

	err := svc.CreateCoupon(context.Background(), coupon)
	appErr := er.AsAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, er.BadRequestCode, appErr.Code)
}
