package repository_test

import (
	"testing"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database per test. The pool is
// pinned to one connection so every statement sees the same memory file.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.MessageThread{},
		&model.Message{},
		&model.Attachment{},
		&model.ReadReceipt{},
		&model.ConnectionStatus{},
		&model.SMSNotification{},
	))

	return db
}

func seedThread(t *testing.T, db *gorm.DB, coupleID, vendorID int64, lastMessageAt time.Time) *model.MessageThread {
	t.Helper()

	thread := &model.MessageThread{
		CoupleID:      coupleID,
		VendorID:      vendorID,
		IsActive:      true,
		LastMessageAt: lastMessageAt,
	}
	require.NoError(t, db.Create(thread).Error)

	return thread
}

func seedMessage(t *testing.T, db *gorm.DB, threadID, senderID int64, senderType model.UserType,
	status model.DeliveryStatus, createdAt time.Time) *model.Message {
	t.Helper()

	msg := &model.Message{
		ThreadID:       threadID,
		SenderID:       senderID,
		SenderType:     senderType,
		Content:        "hello",
		MessageType:    model.MessageTypeText,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
		Status:         status,
		DeliveryStatus: status,
	}
	require.NoError(t, db.Create(msg).Error)

	return msg
}

func seedNotification(t *testing.T, db *gorm.DB, messageID, threadID int64,
	status model.SMSStatus, updatedAt time.Time) *model.SMSNotification {
	t.Helper()

	notification := &model.SMSNotification{
		MessageID:      messageID,
		ThreadID:       threadID,
		RecipientPhone: "+251911223344",
		SMSContent:     "you have an unread message",
		DeliveryStatus: status,
		CreatedAt:      updatedAt,
		UpdatedAt:      updatedAt,
	}
	require.NoError(t, db.Create(notification).Error)

	return notification
}
