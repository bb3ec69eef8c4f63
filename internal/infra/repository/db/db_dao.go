package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.Address{},
		&model.Brand{},
		&model.Category{},
		&model.Season{},
		&model.Size{},
		&model.Product{},
		&model.ProductImage{},
		&model.Cart{},
		&model.CartItem{},
		&model.Coupon{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderStatusHistory{},
		&model.Payment{},
		&model.EmailLog{},
		&model.Page{},
		&model.BlogPost{},
		&model.FAQ{},
	)
}

// ExecTx 在單一交易內執行fn，fn收到的是綁定tx的DbDao
// 訂單建立、優惠券計數等跨表寫入都必須走這裡
func (d *DbDao) ExecTx(ctx context.Context, fn func(txDao *DbDao) error) error {
	return d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewDbDao(tx))
	})
}
