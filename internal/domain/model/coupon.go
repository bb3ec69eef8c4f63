package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Coupon struct {
	CouponID      uint            `gorm:"primaryKey" json:"coupon_id"`
	Code          string          `gorm:"not null;type:varchar(50);unique" json:"code"`
	DiscountType  DiscountType    `gorm:"not null;type:varchar(20)" json:"discount_type"`
	DiscountValue decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"discount_value"`
	ValidFrom     time.Time       `gorm:"not null" json:"valid_from"`
	ValidTo       time.Time       `gorm:"not null" json:"valid_to"`
	Active        bool            `gorm:"not null;default:true" json:"active"`
	UsageLimit    *uint           `gorm:"null" json:"usage_limit"`
	TimesUsed     uint            `gorm:"not null;default:0" json:"times_used"`
	BaseModel
}

// IsValid 有效 iff active ∧ valid_from <= now <= valid_to ∧ (無上限 ∨ 未達上限)
// 邊界時間等於 valid_from / valid_to 視為有效
func (c *Coupon) IsValid(now time.Time) bool {
	if !c.Active {
		return false
	}
	if now.Before(c.ValidFrom) || now.After(c.ValidTo) {
		return false
	}
	if c.UsageLimit != nil && c.TimesUsed >= *c.UsageLimit {
		return false
	}
	return true
}

// Discount 計算折扣金額
// percentage: subtotal × value / 100
// fixed: 直接回傳面額，刻意不以subtotal為上限(總額可能為負，維持原始行為)
func (c *Coupon) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if c.DiscountType == DiscountPercentage {
		return subtotal.Mul(c.DiscountValue).Div(decimal.NewFromInt(100))
	}
	return c.DiscountValue
}
