package db

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"gorm.io/gorm"
)

type IOrderRepository interface {
	CreateOrderTx(ctx context.Context, order *model.Order, cartID uint, actor *uint) error
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	GetUserOrder(ctx context.Context, userID, orderID uint) (*model.Order, error)
	GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error)
	GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error)
	TransitionStatus(ctx context.Context, orderID uint, status model.OrderStatus, note string, actor *uint) error
	MarkPaid(ctx context.Context, orderID uint, paidAt time.Time, note string) error
	SetTrackingNumber(ctx context.Context, orderID uint, trackingNumber string) error
}

// 訂單建立後除status/tracking_number/paid_at外視為不可變
type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrderTx 單一交易完成建單
// order + items + 初始history + 優惠券計數 + 清空購物車
// 任一步失敗全部回滾，購物車不會在訂單未落地時被清空
func (r *OrderRepo) CreateOrderTx(ctx context.Context, order *model.Order, cartID uint, actor *uint) error {
	return r.db.ExecTx(ctx, func(tx *DbDao) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		history := model.OrderStatusHistory{
			OrderID:   order.OrderID,
			Status:    model.OrderStatusPending,
			Note:      "order created",
			ChangedBy: actor,
			ChangedAt: time.Now(),
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		if order.CouponID != nil {
			if err := incrementCouponUsage(tx, *order.CouponID); err != nil {
				return err
			}
		}

		return tx.Where("cart_id = ?", cartID).
			Unscoped().Delete(&model.CartItem{}).Error
	})
}

func (r *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").Preload("User").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_status_histories.changed_at")
		}).
		First(&order, "order_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetUserOrder(ctx context.Context, userID, orderID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_status_histories.changed_at")
		}).
		First(&order, "order_id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetOrdersByUserID(ctx context.Context, userID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// 分頁查詢訂單 後台用
func (r *OrderRepo) GetOrdersPaginated(ctx context.Context, page, pageSize int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	offset := (page - 1) * pageSize

	if err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(pageSize).
		Find(&orders).Error

	return orders, total, err
}

// TransitionStatus 更新狀態並追加history，同一交易
// 狀態機檢核由service層把關，這裡只保證帳本與狀態一致
func (r *OrderRepo) TransitionStatus(ctx context.Context, orderID uint, status model.OrderStatus, note string, actor *uint) error {
	return r.db.ExecTx(ctx, func(tx *DbDao) error {
		res := tx.Model(&model.Order{}).
			Where("order_id = ?", orderID).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRecordNotFound
		}

		history := model.OrderStatusHistory{
			OrderID:   orderID,
			Status:    status,
			Note:      note,
			ChangedBy: actor,
			ChangedAt: time.Now(),
		}
		return tx.Create(&history).Error
	})
}

// MarkPaid 由已驗證的付款成功事件觸發
// 訂單已非pending時回ErrOrderNotPending，不存在時回ErrRecordNotFound
func (r *OrderRepo) MarkPaid(ctx context.Context, orderID uint, paidAt time.Time, note string) error {
	return r.db.ExecTx(ctx, func(tx *DbDao) error {
		res := tx.Model(&model.Order{}).
			Where("order_id = ? AND status = ?", orderID, model.OrderStatusPending).
			Updates(map[string]interface{}{
				"status":  model.OrderStatusPaid,
				"paid_at": paidAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&model.Order{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrOrderNotPending
			}
			return ErrRecordNotFound
		}

		history := model.OrderStatusHistory{
			OrderID:   orderID,
			Status:    model.OrderStatusPaid,
			Note:      note,
			ChangedAt: paidAt,
		}
		return tx.Create(&history).Error
	})
}

func (r *OrderRepo) SetTrackingNumber(ctx context.Context, orderID uint, trackingNumber string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Update("tracking_number", trackingNumber).Error
}
