package mocks

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/stretchr/testify/mock"
)

type AttachmentRepository struct {
	mock.Mock
}

func (a *AttachmentRepository) Create(ctx context.Context, attachment *model.Attachment) error {
	args := a.Called(ctx, attachment)
	return args.Error(0)
}

func (a *AttachmentRepository) ListByMessage(messageID int64) ([]model.Attachment, error) {
	args := a.Called(messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Attachment), args.Error(1)
}
