package model

import "time"

type Attachment struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	MessageID    int64     `gorm:"column:message_id;index:idx_attachments_message"`
	FileName     string    `gorm:"column:file_name;type:varchar(255)"`
	FileType     string    `gorm:"column:file_type;type:varchar(128)"`
	FileSize     int64     `gorm:"column:file_size"`
	FileURL      string    `gorm:"column:file_url;type:varchar(512)"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url;type:varchar(512)"`
	UploadedAt   time.Time `gorm:"column:uploaded_at"`

	Message Message `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

func (Attachment) TableName() string { return "message_attachments" }
