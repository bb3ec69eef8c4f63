package model

import (
	"github.com/shopspring/decimal"
)

// Cart 一個使用者只有一台購物車
type Cart struct {
	CartID uint       `gorm:"primaryKey" json:"cart_id"`
	UserID uint       `gorm:"not null;unique" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	BaseModel
}

// CartItem (cart, product) 唯一，重複加入同商品時合併數量
type CartItem struct {
	ItemID    uint     `gorm:"primaryKey" json:"item_id"`
	CartID    uint     `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint     `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null;default:1" json:"quantity"`
	BaseModel
}

// Subtotal 單項小計，需預載Product
func (i *CartItem) Subtotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalPrice 整車金額 = Σ(單價×數量)，需預載Items.Product
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// TotalItems 整車件數 = Σ(數量)
func (c *Cart) TotalItems() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
