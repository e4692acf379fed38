package model

import "time"

type SMSStatus string

const (
	SMSStatusPending SMSStatus = "pending"
	SMSStatusSent    SMSStatus = "sent"
	SMSStatusFailed  SMSStatus = "failed"
)

func (s SMSStatus) Valid() bool {
	return s == SMSStatusPending || s == SMSStatusSent || s == SMSStatusFailed
}

// SMSNotification records one escalation attempt per message. The unique
// message_id index is the guard that keeps overlapping worker runs from
// sending the same SMS twice.
type SMSNotification struct {
	ID                int64      `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	MessageID         int64      `gorm:"column:message_id;uniqueIndex:idx_sms_message"`
	ThreadID          int64      `gorm:"column:thread_id;index"`
	RecipientPhone    string     `gorm:"column:recipient_phone;type:varchar(32)"`
	SMSContent        string     `gorm:"column:sms_content;type:text"`
	SentAt            *time.Time `gorm:"column:sent_at"`
	DeliveryStatus    SMSStatus  `gorm:"column:delivery_status;type:varchar(16);index"`
	ProviderMessageID *string    `gorm:"column:provider_message_id;type:varchar(128)"`
	ErrorMessage      *string    `gorm:"column:error_message;type:text"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (SMSNotification) TableName() string { return "sms_notifications" }
