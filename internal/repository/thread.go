package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"gorm.io/gorm"
)

var ErrThreadNotFound = errors.New("THREAD_NOT_FOUND")
var ErrThreadDuplicate = errors.New("THREAD_DUPLICATE")

type ThreadRepository interface {
	Create(ctx context.Context, thread *model.MessageThread) error
	GetByID(id int64) (*model.MessageThread, error)
	GetByPair(coupleID, vendorID int64) (*model.MessageThread, error)
	ListForUser(userID int64, userType model.UserType, limit, offset int) ([]model.MessageThread, error)
	CountForUser(userID int64, userType model.UserType) (int, error)
	AdvanceLastMessageAt(ctx context.Context, threadID int64, at time.Time) error
	Deactivate(ctx context.Context, threadID int64) error
}

type Thread struct {
	db *gorm.DB
}

func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &Thread{db: db}
}

func (t *Thread) Create(ctx context.Context, thread *model.MessageThread) error {
	db := GetTx(ctx, t.db)

	err := db.Create(thread).Error
	if err == nil {
		return nil
	}

	if isDuplicateKey(err) {
		return ErrThreadDuplicate
	}

	return err
}

func (t *Thread) GetByID(id int64) (*model.MessageThread, error) {
	var thread model.MessageThread

	err := t.db.Where("id = ?", id).First(&thread).Error
	if err == nil {
		return &thread, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrThreadNotFound
	}

	return nil, err
}

func (t *Thread) GetByPair(coupleID, vendorID int64) (*model.MessageThread, error) {
	var thread model.MessageThread

	err := t.db.Where("couple_id = ? AND vendor_id = ?", coupleID, vendorID).First(&thread).Error
	if err == nil {
		return &thread, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrThreadNotFound
	}

	return nil, err
}

func (t *Thread) ListForUser(userID int64, userType model.UserType, limit, offset int) ([]model.MessageThread, error) {
	var threads []model.MessageThread

	err := t.participantScope(userID, userType).
		Where("is_active = ?", true).
		Order("last_message_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&threads).Error
	if err != nil {
		return nil, err
	}

	return threads, nil
}

func (t *Thread) CountForUser(userID int64, userType model.UserType) (int, error) {
	var count int64

	err := t.participantScope(userID, userType).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// AdvanceLastMessageAt moves last_message_at forward only. Appends that
// lose the race against a newer message leave the row untouched.
func (t *Thread) AdvanceLastMessageAt(ctx context.Context, threadID int64, at time.Time) error {
	db := GetTx(ctx, t.db)

	return db.Model(&model.MessageThread{}).
		Where("id = ? AND last_message_at <= ?", threadID, at).
		Updates(map[string]interface{}{
			"last_message_at": at,
			"updated_at":      time.Now().UTC(),
		}).Error
}

func (t *Thread) Deactivate(ctx context.Context, threadID int64) error {
	db := GetTx(ctx, t.db)

	result := db.Model(&model.MessageThread{}).
		Where("id = ? AND is_active = ?", threadID, true).
		Updates(map[string]interface{}{
			"is_active":  false,
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

func (t *Thread) participantScope(userID int64, userType model.UserType) *gorm.DB {
	query := t.db.Model(&model.MessageThread{})

	if userType == model.UserTypeVendor {
		return query.Where("vendor_id = ?", userID)
	}

	return query.Where("couple_id = ?", userID)
}
