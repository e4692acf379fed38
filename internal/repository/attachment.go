package repository

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"gorm.io/gorm"
)

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *model.Attachment) error
	ListByMessage(messageID int64) ([]model.Attachment, error)
}

type Attachment struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &Attachment{db: db}
}

func (a *Attachment) Create(ctx context.Context, attachment *model.Attachment) error {
	db := GetTx(ctx, a.db)
	return db.Create(attachment).Error
}

func (a *Attachment) ListByMessage(messageID int64) ([]model.Attachment, error) {
	var attachments []model.Attachment

	err := a.db.Where("message_id = ?", messageID).
		Order("id ASC").
		Find(&attachments).Error
	if err != nil {
		return nil, err
	}

	return attachments, nil
}
