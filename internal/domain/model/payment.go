package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSucceeded  PaymentStatus = "succeeded"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Payment 一張訂單可能有多次付款嘗試
// 以外部金流的intent id為唯一鍵，不保存卡號等原始資料
type Payment struct {
	PaymentID       uint            `gorm:"primaryKey" json:"payment_id"`
	OrderID         uint            `gorm:"not null;index" json:"order_id"`
	Order           *Order          `gorm:"foreignKey:OrderID" json:"-"`
	PaymentIntentID string          `gorm:"not null;type:varchar(255);unique" json:"payment_intent_id"`
	Amount          decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	Currency        string          `gorm:"not null;type:varchar(3);default:USD" json:"currency"`
	Status          PaymentStatus   `gorm:"not null;type:varchar(20);default:pending" json:"status"`
	PaymentMethod   string          `gorm:"type:varchar(50)" json:"payment_method"`
	Metadata        json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	ErrorMessage    string          `gorm:"type:text" json:"error_message"`
	PaidAt          *time.Time      `gorm:"null" json:"paid_at"`
	BaseModel
}
