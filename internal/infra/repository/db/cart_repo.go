package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ICartRepository interface {
	GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error)
	GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error)
	GetCartItem(ctx context.Context, cartID, itemID uint) (*model.CartItem, error)
	AddItem(ctx context.Context, cartID, productID uint, quantity int) (*model.CartItem, error)
	UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error
	RemoveItem(ctx context.Context, itemID uint) error
	ClearCart(ctx context.Context, cartID uint) error
}

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

// GetOrCreateCart 讀取使用者購物車，不存在則建立
// 併發的get-or-create可能撞到unique(user_id)，撞到時重讀即可
func (r *CartRepo) GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := r.GetCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = &model.Cart{UserID: userID}
	err = r.db.WithContext(ctx).Create(cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.GetCartByUserID(ctx, userID)
		}
		return nil, err
	}
	return cart, nil
}

func (r *CartRepo) GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.created_at") }).
		Preload("Items.Product").
		First(&cart, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepo) GetCartItem(ctx context.Context, cartID, itemID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).Preload("Product").
		First(&item, "item_id = ? AND cart_id = ?", itemID, cartID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AddItem 同商品已在車上則合併數量
// 靠unique(cart_id, product_id)的upsert保證冪等
func (r *CartRepo) AddItem(ctx context.Context, cartID, productID uint, quantity int) (*model.CartItem, error) {
	item := model.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", quantity),
		}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	var saved model.CartItem
	err = r.db.WithContext(ctx).Preload("Product").
		First(&saved, "cart_id = ? AND product_id = ?", cartID, productID).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// 絕對值更新
func (r *CartRepo) UpdateItemQuantity(ctx context.Context, itemID uint, quantity int) error {
	res := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("item_id = ?", itemID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *CartRepo) RemoveItem(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).Where("item_id = ?", itemID).
		Unscoped().Delete(&model.CartItem{}).Error
}

func (r *CartRepo) ClearCart(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).
		Unscoped().Delete(&model.CartItem{}).Error
}
