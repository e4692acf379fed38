package mocks

import (
	"context"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/stretchr/testify/mock"
)

type ReadReceiptRepository struct {
	mock.Mock
}

func (r *ReadReceiptRepository) Record(ctx context.Context, receipt *model.ReadReceipt) error {
	args := r.Called(ctx, receipt)
	return args.Error(0)
}

func (r *ReadReceiptRepository) RecordMany(ctx context.Context, messageIDs []int64, userID int64, at time.Time) error {
	args := r.Called(ctx, messageIDs, userID, at)
	return args.Error(0)
}

func (r *ReadReceiptRepository) Exists(messageID, userID int64) (bool, error) {
	args := r.Called(messageID, userID)
	return args.Bool(0), args.Error(1)
}

func (r *ReadReceiptRepository) ListByMessage(messageID int64) ([]model.ReadReceipt, error) {
	args := r.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReadReceipt), args.Error(1)
}
