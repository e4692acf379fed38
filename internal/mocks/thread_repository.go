package mocks

import (
	"context"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/stretchr/testify/mock"
)

type ThreadRepository struct {
	mock.Mock
}

func (t *ThreadRepository) Create(ctx context.Context, thread *model.MessageThread) error {
	args := t.Called(ctx, thread)
	return args.Error(0)
}

func (t *ThreadRepository) GetByID(id int64) (*model.MessageThread, error) {
	args := t.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MessageThread), args.Error(1)
}

func (t *ThreadRepository) GetByPair(coupleID, vendorID int64) (*model.MessageThread, error) {
	args := t.Called(coupleID, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MessageThread), args.Error(1)
}

func (t *ThreadRepository) ListForUser(userID int64, userType model.UserType, limit, offset int) ([]model.MessageThread, error) {
	args := t.Called(userID, userType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MessageThread), args.Error(1)
}

func (t *ThreadRepository) CountForUser(userID int64, userType model.UserType) (int, error) {
	args := t.Called(userID, userType)
	return args.Int(0), args.Error(1)
}

func (t *ThreadRepository) AdvanceLastMessageAt(ctx context.Context, threadID int64, at time.Time) error {
	args := t.Called(ctx, threadID, at)
	return args.Error(0)
}

func (t *ThreadRepository) Deactivate(ctx context.Context, threadID int64) error {
	args := t.Called(ctx, threadID)
	return args.Error(0)
}
