package model

import "time"

// ReadReceipt is a per-user fact, distinct from the message's thread-level
// read_at. The unique (message_id, user_id) pair makes duplicate recordings
// no-ops and leaves room for more than two readers even though the product
// model is two-party.
type ReadReceipt struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	MessageID int64     `gorm:"column:message_id;index:idx_message_user,unique"`
	UserID    int64     `gorm:"column:user_id;index:idx_message_user,unique"`
	ReadAt    time.Time `gorm:"column:read_at"`
}

func (ReadReceipt) TableName() string { return "message_read_status" }
