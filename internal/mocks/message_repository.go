package mocks

import (
	"context"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/stretchr/testify/mock"
)

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MessageRepository) GetByID(id int64) (*model.Message, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MessageRepository) ListByThread(threadID, beforeID int64, limit int) ([]model.Message, error) {
	args := m.Called(threadID, beforeID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MessageRepository) CountByThread(threadID int64) (int, error) {
	args := m.Called(threadID)
	return args.Int(0), args.Error(1)
}

func (m *MessageRepository) CountUnread(threadID, recipientID int64, recipientType model.UserType) (int, error) {
	args := m.Called(threadID, recipientID, recipientType)
	return args.Int(0), args.Error(1)
}

func (m *MessageRepository) MarkDelivered(ctx context.Context, messageID int64, at time.Time) error {
	args := m.Called(ctx, messageID, at)
	return args.Error(0)
}

func (m *MessageRepository) MarkRead(ctx context.Context, messageID int64, at time.Time) error {
	args := m.Called(ctx, messageID, at)
	return args.Error(0)
}

func (m *MessageRepository) ListUnreadIncoming(threadID, readerID int64, readerType model.UserType) ([]int64, error) {
	args := m.Called(threadID, readerID, readerType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MessageRepository) MarkManyRead(ctx context.Context, messageIDs []int64, at time.Time) (int64, error) {
	args := m.Called(ctx, messageIDs, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MessageRepository) SoftDelete(ctx context.Context, messageID int64, at time.Time) error {
	args := m.Called(ctx, messageID, at)
	return args.Error(0)
}

func (m *MessageRepository) ListOverdueUnread(cutoff time.Time, limit int) ([]model.Message, error) {
	args := m.Called(cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}
