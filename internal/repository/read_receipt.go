package repository

import (
	"context"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReadReceiptRepository interface {
	Record(ctx context.Context, receipt *model.ReadReceipt) error
	RecordMany(ctx context.Context, messageIDs []int64, userID int64, at time.Time) error
	Exists(messageID, userID int64) (bool, error)
	ListByMessage(messageID int64) ([]model.ReadReceipt, error)
}

type ReadReceipt struct {
	db *gorm.DB
}

func NewReadReceiptRepository(db *gorm.DB) ReadReceiptRepository {
	return &ReadReceipt{db: db}
}

// Record inserts the receipt once. Replays of the same (message, user)
// pair leave the original read_at in place.
func (r *ReadReceipt) Record(ctx context.Context, receipt *model.ReadReceipt) error {
	db := GetTx(ctx, r.db)

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "message_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(receipt).Error
}

func (r *ReadReceipt) RecordMany(ctx context.Context, messageIDs []int64, userID int64, at time.Time) error {
	if len(messageIDs) == 0 {
		return nil
	}

	receipts := make([]model.ReadReceipt, 0, len(messageIDs))
	for _, messageID := range messageIDs {
		receipts = append(receipts, model.ReadReceipt{
			MessageID: messageID,
			UserID:    userID,
			ReadAt:    at,
		})
	}

	db := GetTx(ctx, r.db)

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "message_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&receipts).Error
}

func (r *ReadReceipt) Exists(messageID, userID int64) (bool, error) {
	var count int64

	err := r.db.Model(&model.ReadReceipt{}).
		Where("message_id = ? AND user_id = ?", messageID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ReadReceipt) ListByMessage(messageID int64) ([]model.ReadReceipt, error) {
	var receipts []model.ReadReceipt

	err := r.db.Where("message_id = ?", messageID).
		Order("read_at ASC").
		Find(&receipts).Error
	if err != nil {
		return nil, err
	}

	return receipts, nil
}
