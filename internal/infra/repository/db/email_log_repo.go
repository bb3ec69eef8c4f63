package db

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
)

type IEmailLogRepository interface {
	CreateEmailLog(ctx context.Context, emailLog *model.EmailLog) error
	MarkEmailSent(ctx context.Context, id uint, sentAt time.Time) error
	MarkEmailFailed(ctx context.Context, id uint, errMsg string) error
	ListEmailLogsByUserID(ctx context.Context, userID uint) ([]model.EmailLog, error)
}

type EmailLogRepo struct {
	db *DbDao
}

func NewEmailLogRepo(db *DbDao) *EmailLogRepo {
	return &EmailLogRepo{db: db}
}

func (r *EmailLogRepo) CreateEmailLog(ctx context.Context, emailLog *model.EmailLog) error {
	return r.db.WithContext(ctx).Create(emailLog).Error
}

func (r *EmailLogRepo) MarkEmailSent(ctx context.Context, id uint, sentAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.EmailLog{}).
		Where("email_log_id = ?", id).
		Updates(map[string]interface{}{
			"status":  model.EmailStatusSent,
			"sent_at": sentAt,
		}).Error
}

// 寄送失敗只留紀錄，不會自動重送
func (r *EmailLogRepo) MarkEmailFailed(ctx context.Context, id uint, errMsg string) error {
	return r.db.WithContext(ctx).Model(&model.EmailLog{}).
		Where("email_log_id = ?", id).
		Updates(map[string]interface{}{
			"status":        model.EmailStatusFailed,
			"error_message": errMsg,
		}).Error
}

func (r *EmailLogRepo) ListEmailLogsByUserID(ctx context.Context, userID uint) ([]model.EmailLog, error) {
	var logs []model.EmailLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
