package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("MESSAGE_NOT_FOUND")

type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	GetByID(id int64) (*model.Message, error)
	ListByThread(threadID, beforeID int64, limit int) ([]model.Message, error)
	CountByThread(threadID int64) (int, error)
	CountUnread(threadID, recipientID int64, recipientType model.UserType) (int, error)
	MarkDelivered(ctx context.Context, messageID int64, at time.Time) error
	MarkRead(ctx context.Context, messageID int64, at time.Time) error
	ListUnreadIncoming(threadID, readerID int64, readerType model.UserType) ([]int64, error)
	MarkManyRead(ctx context.Context, messageIDs []int64, at time.Time) (int64, error)
	SoftDelete(ctx context.Context, messageID int64, at time.Time) error
	ListOverdueUnread(cutoff time.Time, limit int) ([]model.Message, error)
}

type Message struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &Message{db: db}
}

func (m *Message) Create(ctx context.Context, message *model.Message) error {
	db := GetTx(ctx, m.db)
	return db.Create(message).Error
}

func (m *Message) GetByID(id int64) (*model.Message, error) {
	var message model.Message

	err := m.db.Where("id = ?", id).First(&message).Error
	if err == nil {
		return &message, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}

	return nil, err
}

// ListByThread returns undeleted messages newest first. A beforeID above
// zero restricts the page to messages older than that id.
func (m *Message) ListByThread(threadID, beforeID int64, limit int) ([]model.Message, error) {
	var messages []model.Message

	query := m.db.Where("thread_id = ? AND is_deleted = ?", threadID, false)
	if beforeID > 0 {
		query = query.Where("id < ?", beforeID)
	}

	err := query.Order("id DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (m *Message) CountByThread(threadID int64) (int, error) {
	var count int64

	err := m.db.Model(&model.Message{}).
		Where("thread_id = ? AND is_deleted = ?", threadID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// CountUnread counts undeleted messages the recipient has not read yet.
// Couple and vendor ids live in separate namespaces, so the sender match
// includes sender_type.
func (m *Message) CountUnread(threadID, recipientID int64, recipientType model.UserType) (int, error) {
	var count int64

	err := m.db.Model(&model.Message{}).
		Where("thread_id = ? AND NOT (sender_id = ? AND sender_type = ?) AND delivery_status <> ? AND is_deleted = ?",
			threadID, recipientID, recipientType, model.DeliveryStatusRead, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// MarkDelivered advances sent to delivered. Messages already delivered or
// read match no rows and return ErrNoRowsAffected.
func (m *Message) MarkDelivered(ctx context.Context, messageID int64, at time.Time) error {
	db := GetTx(ctx, m.db)

	result := db.Model(&model.Message{}).
		Where("id = ? AND delivery_status = ?", messageID, model.DeliveryStatusSent).
		Updates(map[string]interface{}{
			"delivery_status": model.DeliveryStatusDelivered,
			"status":          model.DeliveryStatusDelivered,
			"delivered_at":    at,
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// MarkRead advances any unread message to read. delivered_at keeps its
// first value when the delivered ack already landed.
func (m *Message) MarkRead(ctx context.Context, messageID int64, at time.Time) error {
	db := GetTx(ctx, m.db)

	result := db.Model(&model.Message{}).
		Where("id = ? AND delivery_status <> ?", messageID, model.DeliveryStatusRead).
		Updates(readAssignments(at))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (m *Message) ListUnreadIncoming(threadID, readerID int64, readerType model.UserType) ([]int64, error) {
	var ids []int64

	err := m.db.Model(&model.Message{}).
		Where("thread_id = ? AND NOT (sender_id = ? AND sender_type = ?) AND delivery_status <> ? AND is_deleted = ?",
			threadID, readerID, readerType, model.DeliveryStatusRead, false).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (m *Message) MarkManyRead(ctx context.Context, messageIDs []int64, at time.Time) (int64, error) {
	if len(messageIDs) == 0 {
		return 0, nil
	}

	db := GetTx(ctx, m.db)

	result := db.Model(&model.Message{}).
		Where("id IN ? AND delivery_status <> ?", messageIDs, model.DeliveryStatusRead).
		Updates(readAssignments(at))

	return result.RowsAffected, result.Error
}

func (m *Message) SoftDelete(ctx context.Context, messageID int64, at time.Time) error {
	db := GetTx(ctx, m.db)

	result := db.Model(&model.Message{}).
		Where("id = ? AND is_deleted = ?", messageID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": at,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// ListOverdueUnread returns unread messages in active threads created at or
// before cutoff that have no sms_notifications row yet, oldest first.
func (m *Message) ListOverdueUnread(cutoff time.Time, limit int) ([]model.Message, error) {
	var messages []model.Message

	err := m.db.
		Joins("Thread").
		Where("messages.delivery_status <> ?", model.DeliveryStatusRead).
		Where("messages.is_deleted = ?", false).
		Where("messages.created_at <= ?", cutoff).
		Where("Thread.is_active = ?", true).
		Where("NOT EXISTS (SELECT 1 FROM sms_notifications WHERE sms_notifications.message_id = messages.id)").
		Order("messages.created_at ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func readAssignments(at time.Time) map[string]interface{} {
	return map[string]interface{}{
		"delivery_status": model.DeliveryStatusRead,
		"status":          model.DeliveryStatusRead,
		"delivered_at":    gorm.Expr("COALESCE(delivered_at, ?)", at),
		"read_at":         at,
		"updated_at":      time.Now().UTC(),
	}
}
