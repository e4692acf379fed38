package mocks

import (
	"context"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/stretchr/testify/mock"
)

type SMSNotificationRepository struct {
	mock.Mock
}

func (s *SMSNotificationRepository) Create(ctx context.Context, notification *model.SMSNotification) error {
	args := s.Called(ctx, notification)
	return args.Error(0)
}

func (s *SMSNotificationRepository) Update(ctx context.Context, notification *model.SMSNotification) error {
	args := s.Called(ctx, notification)
	return args.Error(0)
}

func (s *SMSNotificationRepository) GetByMessageID(messageID int64) (*model.SMSNotification, error) {
	args := s.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SMSNotification), args.Error(1)
}

func (s *SMSNotificationRepository) ListByStatus(status model.SMSStatus, limit, offset int) ([]model.SMSNotification, error) {
	args := s.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SMSNotification), args.Error(1)
}

func (s *SMSNotificationRepository) CountByStatus(status model.SMSStatus) (int, error) {
	args := s.Called(status)
	return args.Int(0), args.Error(1)
}

func (s *SMSNotificationRepository) ListStalePending(olderThan time.Time, limit int) ([]model.SMSNotification, error) {
	args := s.Called(olderThan, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SMSNotification), args.Error(1)
}

func (s *SMSNotificationRepository) Reclaim(ctx context.Context, notificationID int64, olderThan time.Time) error {
	args := s.Called(ctx, notificationID, olderThan)
	return args.Error(0)
}

func (s *SMSNotificationRepository) DeleteFailed(ctx context.Context, messageID int64) error {
	args := s.Called(ctx, messageID)
	return args.Error(0)
}
