package db

import (
	"context"

	"gorm.io/gorm"
)

// UnifiedDB 統一的資料庫介面
type UnifiedDB interface {
	// 基礎操作
	GetDB() *gorm.DB
	ExecTx(ctx context.Context, fn func(txDao *DbDao) error) error
	InitMigrate() error

	IUserRepository
	IAddressRepository
	ICatalogRepository
	IProductRepository
	ICartRepository
	ICouponRepository
	IOrderRepository
	IPaymentRepository
	IEmailLogRepository
	IContentRepository
}

// UnifiedDBImpl 統一資料庫實現，各repo以embedding組合
type UnifiedDBImpl struct {
	db    *gorm.DB
	dbDao *DbDao
	*UserRepo
	*AddressRepo
	*CatalogRepo
	*ProductDBRepo
	*CartRepo
	*CouponRepo
	*OrderRepo
	*PaymentRepo
	*EmailLogRepo
	*ContentRepo
}

func NewUnifiedDB(conn *gorm.DB) *UnifiedDBImpl {
	dbDao := NewDbDao(conn)
	return &UnifiedDBImpl{
		db:            conn,
		dbDao:         dbDao,
		UserRepo:      NewUserRepo(dbDao),
		AddressRepo:   NewAddressRepo(dbDao),
		CatalogRepo:   NewCatalogRepo(dbDao),
		ProductDBRepo: NewProductDBRepo(dbDao),
		CartRepo:      NewCartRepo(dbDao),
		CouponRepo:    NewCouponRepo(dbDao),
		OrderRepo:     NewOrderRepo(dbDao),
		PaymentRepo:   NewPaymentRepo(dbDao),
		EmailLogRepo:  NewEmailLogRepo(dbDao),
		ContentRepo:   NewContentRepo(dbDao),
	}
}

func (u *UnifiedDBImpl) InitMigrate() error {
	return u.dbDao.InitMigrate()
}

// GetDB 獲取資料庫連接
func (u *UnifiedDBImpl) GetDB() *gorm.DB {
	return u.db
}

// ExecTx 開始事務
func (u *UnifiedDBImpl) ExecTx(ctx context.Context, fn func(txDao *DbDao) error) error {
	return u.dbDao.ExecTx(ctx, fn)
}

var (
	_ UnifiedDB           = (*UnifiedDBImpl)(nil)
	_ IUserRepository     = (*UnifiedDBImpl)(nil)
	_ IOrderRepository    = (*UnifiedDBImpl)(nil)
	_ IProductRepository  = (*UnifiedDBImpl)(nil)
	_ ICartRepository     = (*UnifiedDBImpl)(nil)
	_ IPaymentRepository  = (*UnifiedDBImpl)(nil)
	_ IEmailLogRepository = (*UnifiedDBImpl)(nil)
)
