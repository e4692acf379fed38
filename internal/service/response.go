package service

import (
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
)

type ThreadResponse struct {
	ThreadID      int64   `json:"thread_id"`
	CoupleID      int64   `json:"couple_id"`
	VendorID      int64   `json:"vendor_id"`
	LeadID        *int64  `json:"lead_id,omitempty"`
	ServiceType   *string `json:"service_type,omitempty"`
	IsActive      bool    `json:"is_active"`
	LastMessageAt string  `json:"last_message_at"`
	CreatedAt     string  `json:"created_at"`
}

type OpenThreadResponse struct {
	Thread  ThreadResponse `json:"thread"`
	Created bool           `json:"created"`
}

type ThreadSummary struct {
	ThreadResponse
	UnreadCount int `json:"unread_count"`
}

type ListThreadsResponse struct {
	Threads []ThreadSummary `json:"threads"`
	Total   int             `json:"total"`
}

type MessageResponse struct {
	MessageID      int64   `json:"message_id"`
	ThreadID       int64   `json:"thread_id"`
	SenderID       int64   `json:"sender_id"`
	SenderType     string  `json:"sender_type"`
	Content        string  `json:"content"`
	MessageType    string  `json:"message_type"`
	DeliveryStatus string  `json:"delivery_status"`
	CreatedAt      string  `json:"created_at"`
	DeliveredAt    *string `json:"delivered_at,omitempty"`
	ReadAt         *string `json:"read_at,omitempty"`
}

type AppendMessageResponse struct {
	Message         MessageResponse `json:"message"`
	RecipientOnline bool            `json:"recipient_online"`
}

type ListMessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int               `json:"total"`
}

type MarkThreadReadResponse struct {
	MarkedCount int64 `json:"marked_count"`
}

type ReadReceiptResponse struct {
	MessageID int64  `json:"message_id"`
	UserID    int64  `json:"user_id"`
	ReadAt    string `json:"read_at"`
}

type AttachmentResponse struct {
	AttachmentID int64   `json:"attachment_id"`
	MessageID    int64   `json:"message_id"`
	FileName     string  `json:"file_name"`
	FileType     string  `json:"file_type"`
	FileSize     int64   `json:"file_size"`
	FileURL      string  `json:"file_url"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	UploadedAt   string  `json:"uploaded_at"`
}

type PresenceResponse struct {
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type,omitempty"`
	Online   bool   `json:"online"`
	LastSeen string `json:"last_seen,omitempty"`
	SocketID string `json:"socket_id,omitempty"`
}

type EscalationResponse struct {
	NotificationID    int64   `json:"notification_id"`
	MessageID         int64   `json:"message_id"`
	ThreadID          int64   `json:"thread_id"`
	RecipientPhone    string  `json:"recipient_phone"`
	Content           string  `json:"content"`
	Status            string  `json:"status"`
	SentAt            *string `json:"sent_at,omitempty"`
	ProviderMessageID *string `json:"provider_message_id,omitempty"`
	ErrorMessage      *string `json:"error_message,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

type ListEscalationsResponse struct {
	Escalations []EscalationResponse `json:"escalations"`
	Total       int                  `json:"total"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := formatTime(*t)
	return &formatted
}

func threadResponseFrom(thread *model.MessageThread) ThreadResponse {
	return ThreadResponse{
		ThreadID:      thread.ID,
		CoupleID:      thread.CoupleID,
		VendorID:      thread.VendorID,
		LeadID:        thread.LeadID,
		ServiceType:   thread.ServiceType,
		IsActive:      thread.IsActive,
		LastMessageAt: formatTime(thread.LastMessageAt),
		CreatedAt:     formatTime(thread.CreatedAt),
	}
}

func messageResponseFrom(message *model.Message) MessageResponse {
	return MessageResponse{
		MessageID:      message.ID,
		ThreadID:       message.ThreadID,
		SenderID:       message.SenderID,
		SenderType:     string(message.SenderType),
		Content:        message.Content,
		MessageType:    string(message.MessageType),
		DeliveryStatus: string(message.DeliveryStatus),
		CreatedAt:      formatTime(message.CreatedAt),
		DeliveredAt:    formatTimePtr(message.DeliveredAt),
		ReadAt:         formatTimePtr(message.ReadAt),
	}
}

func attachmentResponseFrom(attachment *model.Attachment) AttachmentResponse {
	return AttachmentResponse{
		AttachmentID: attachment.ID,
		MessageID:    attachment.MessageID,
		FileName:     attachment.FileName,
		FileType:     attachment.FileType,
		FileSize:     attachment.FileSize,
		FileURL:      attachment.FileURL,
		ThumbnailURL: attachment.ThumbnailURL,
		UploadedAt:   formatTime(attachment.UploadedAt),
	}
}

func escalationResponseFrom(notification *model.SMSNotification) EscalationResponse {
	return EscalationResponse{
		NotificationID:    notification.ID,
		MessageID:         notification.MessageID,
		ThreadID:          notification.ThreadID,
		RecipientPhone:    notification.RecipientPhone,
		Content:           notification.SMSContent,
		Status:            string(notification.DeliveryStatus),
		SentAt:            formatTimePtr(notification.SentAt),
		ProviderMessageID: notification.ProviderMessageID,
		ErrorMessage:      notification.ErrorMessage,
		CreatedAt:         formatTime(notification.CreatedAt),
	}
}
