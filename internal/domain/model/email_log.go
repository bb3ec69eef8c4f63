package model

import "time"

type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

type EmailType string

const (
	EmailTypeRegistration   EmailType = "registration"
	EmailTypeOrderCreated   EmailType = "order_created"
	EmailTypeOrderPaid      EmailType = "order_paid"
	EmailTypeOrderShipped   EmailType = "order_shipped"
	EmailTypeOrderDelivered EmailType = "order_delivered"
)

// EmailLog 寄信嘗試的稽核紀錄，只增不刪
// 失敗只記錄不自動重送
type EmailLog struct {
	EmailLogID   uint        `gorm:"primaryKey" json:"email_log_id"`
	Recipient    string      `gorm:"not null;type:varchar(100)" json:"recipient"`
	UserID       *uint       `gorm:"null" json:"user_id"`
	EmailType    EmailType   `gorm:"not null;type:varchar(50)" json:"email_type"`
	Subject      string      `gorm:"not null;type:varchar(255)" json:"subject"`
	Status       EmailStatus `gorm:"not null;type:varchar(20);default:pending" json:"status"`
	ErrorMessage string      `gorm:"type:text" json:"error_message"`
	SentAt       *time.Time  `gorm:"null" json:"sent_at"`
	BaseModel
}
