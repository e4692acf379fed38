package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"gorm.io/gorm"
)

var ErrEscalationNotFound = errors.New("ESCALATION_NOT_FOUND")
var ErrEscalationDuplicate = errors.New("ESCALATION_DUPLICATE")

type SMSNotificationRepository interface {
	Create(ctx context.Context, notification *model.SMSNotification) error
	Update(ctx context.Context, notification *model.SMSNotification) error
	GetByMessageID(messageID int64) (*model.SMSNotification, error)
	ListByStatus(status model.SMSStatus, limit, offset int) ([]model.SMSNotification, error)
	CountByStatus(status model.SMSStatus) (int, error)
	ListStalePending(olderThan time.Time, limit int) ([]model.SMSNotification, error)
	Reclaim(ctx context.Context, notificationID int64, olderThan time.Time) error
	DeleteFailed(ctx context.Context, messageID int64) error
}

type SMSNotification struct {
	db *gorm.DB
}

func NewSMSNotificationRepository(db *gorm.DB) SMSNotificationRepository {
	return &SMSNotification{db: db}
}

// Create claims the message for escalation. The unique index on
// message_id turns a concurrent claim into ErrEscalationDuplicate.
func (s *SMSNotification) Create(ctx context.Context, notification *model.SMSNotification) error {
	db := GetTx(ctx, s.db)

	err := db.Create(notification).Error
	if err == nil {
		return nil
	}

	if isDuplicateKey(err) {
		return ErrEscalationDuplicate
	}

	return err
}

func (s *SMSNotification) Update(ctx context.Context, notification *model.SMSNotification) error {
	db := GetTx(ctx, s.db)
	return db.Model(notification).Where("id = ?", notification.ID).Updates(notification).Error
}

func (s *SMSNotification) GetByMessageID(messageID int64) (*model.SMSNotification, error) {
	var notification model.SMSNotification

	err := s.db.Where("message_id = ?", messageID).First(&notification).Error
	if err == nil {
		return &notification, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEscalationNotFound
	}

	return nil, err
}

func (s *SMSNotification) ListByStatus(status model.SMSStatus, limit, offset int) ([]model.SMSNotification, error) {
	var notifications []model.SMSNotification

	err := s.db.Where("delivery_status = ?", status).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (s *SMSNotification) CountByStatus(status model.SMSStatus) (int, error) {
	var count int64

	err := s.db.Model(&model.SMSNotification{}).
		Where("delivery_status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func (s *SMSNotification) ListStalePending(olderThan time.Time, limit int) ([]model.SMSNotification, error) {
	var notifications []model.SMSNotification

	err := s.db.Where("delivery_status = ? AND updated_at < ?", model.SMSStatusPending, olderThan).
		Order("updated_at ASC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// Reclaim touches a stale pending row so exactly one worker resumes it.
// Rows already reclaimed or resolved return ErrNoRowsAffected.
func (s *SMSNotification) Reclaim(ctx context.Context, notificationID int64, olderThan time.Time) error {
	db := GetTx(ctx, s.db)

	result := db.Model(&model.SMSNotification{}).
		Where("id = ? AND delivery_status = ? AND updated_at < ?",
			notificationID, model.SMSStatusPending, olderThan).
		Updates(map[string]interface{}{
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (s *SMSNotification) DeleteFailed(ctx context.Context, messageID int64) error {
	db := GetTx(ctx, s.db)

	result := db.Where("message_id = ? AND delivery_status = ?", messageID, model.SMSStatusFailed).
		Delete(&model.SMSNotification{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
