package model

import "time"

type DeliveryStatus string

const (
	DeliveryStatusSent      DeliveryStatus = "sent"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusRead      DeliveryStatus = "read"
)

type MessageType string

const (
	MessageTypeText     MessageType = "text"
	MessageTypeImage    MessageType = "image"
	MessageTypeDocument MessageType = "document"
	MessageTypeSystem   MessageType = "system"
)

func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeDocument, MessageTypeSystem:
		return true
	}
	return false
}

// Message carries two status columns: status is the legacy column kept by the
// mobile clients, delivery_status is the authoritative one. Both always hold
// the same value and are written together.
type Message struct {
	ID             int64          `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	ThreadID       int64          `gorm:"column:thread_id;index:idx_messages_thread"`
	SenderID       int64          `gorm:"column:sender_id"`
	SenderType     UserType       `gorm:"column:sender_type;type:varchar(16)"`
	Content        string         `gorm:"column:content;type:text"`
	MessageType    MessageType    `gorm:"column:message_type;type:varchar(16)"`
	CreatedAt      time.Time      `gorm:"column:created_at;index"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	Status         DeliveryStatus `gorm:"column:status;type:varchar(16)"`
	IsDeleted      bool           `gorm:"column:is_deleted;default:false"`
	DeliveredAt    *time.Time     `gorm:"column:delivered_at"`
	ReadAt         *time.Time     `gorm:"column:read_at"`
	DeliveryStatus DeliveryStatus `gorm:"column:delivery_status;type:varchar(16);index"`

	Thread MessageThread `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
}

func (Message) TableName() string { return "messages" }

// RecipientID resolves the unread side: the participant who did not send.
func (m *Message) RecipientID() int64 {
	return m.Thread.ParticipantID(m.SenderType.Other())
}
