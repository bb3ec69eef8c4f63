package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func IsValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanCancel 僅pending與paid可取消
func (s OrderStatus) CanCancel() bool {
	return s == OrderStatusPending || s == OrderStatusPaid
}

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPaypal PaymentMethod = "paypal"
)

// AddressSnapshot 下單當下的地址快照，與Address本體脫鉤
// 之後修改地址不影響歷史訂單
type AddressSnapshot struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	Country      string `json:"country"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
}

func SnapshotAddress(a *Address) AddressSnapshot {
	return AddressSnapshot{
		FullName:     a.FullName,
		Phone:        a.Phone,
		Country:      a.Country,
		City:         a.City,
		PostalCode:   a.PostalCode,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
	}
}

type Order struct {
	OrderID     uint        `gorm:"primaryKey" json:"order_id"`
	OrderNumber string      `gorm:"not null;type:varchar(36);unique" json:"order_number"`
	UserID      uint        `gorm:"not null;index" json:"user_id"`
	User        *User       `gorm:"foreignKey:UserID" json:"-"`
	Status      OrderStatus `gorm:"not null;type:varchar(20);default:pending" json:"status"`

	Subtotal     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"subtotal"`
	ShippingCost decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0" json:"shipping_cost"`
	Discount     decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0" json:"discount"`
	TotalPrice   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_price"`

	CouponID *uint   `gorm:"null" json:"coupon_id"`
	Coupon   *Coupon `gorm:"foreignKey:CouponID" json:"-"`

	// 地址以JSON快照保存
	ShippingAddress json.RawMessage `gorm:"not null;type:jsonb" json:"shipping_address"`
	BillingAddress  json.RawMessage `gorm:"type:jsonb" json:"billing_address,omitempty"`

	ShippingMethod ShippingMethod `gorm:"not null;type:varchar(20);default:standard" json:"shipping_method"`
	PaymentMethod  PaymentMethod  `gorm:"not null;type:varchar(20)" json:"payment_method"`
	TrackingNumber string         `gorm:"type:varchar(100)" json:"tracking_number"`

	PaidAt *time.Time `gorm:"null" json:"paid_at"`

	Items         []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"status_history,omitempty"`
	BaseModel
}

// OrderItem 商品快照，價格於建單時複製，不回讀現價
type OrderItem struct {
	OrderItemID uint            `gorm:"primaryKey" json:"order_item_id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   uint            `gorm:"not null" json:"product_id"`
	Product     *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity"`
	BaseModel
}

func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderStatusHistory 狀態變更帳本，只增不改不刪
type OrderStatusHistory struct {
	HistoryID uint        `gorm:"primaryKey" json:"history_id"`
	OrderID   uint        `gorm:"not null;index" json:"order_id"`
	Status    OrderStatus `gorm:"not null;type:varchar(20)" json:"status"`
	Note      string      `gorm:"type:text" json:"note"`
	ChangedBy *uint       `gorm:"null" json:"changed_by"`
	ChangedAt time.Time   `gorm:"not null;default:now()" json:"changed_at"`
}
