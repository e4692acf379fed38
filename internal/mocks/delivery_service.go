package mocks

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/stretchr/testify/mock"
)

type DeliveryService struct {
	mock.Mock
}

func (d *DeliveryService) MarkDelivered(ctx context.Context, cmd service.MarkDeliveredCommand) error {
	args := d.Called(ctx, cmd)
	return args.Error(0)
}

func (d *DeliveryService) MarkRead(ctx context.Context, cmd service.MarkReadCommand) error {
	args := d.Called(ctx, cmd)
	return args.Error(0)
}

func (d *DeliveryService) MarkThreadRead(ctx context.Context, cmd service.MarkThreadReadCommand) (service.MarkThreadReadResponse, error) {
	args := d.Called(ctx, cmd)
	return args.Get(0).(service.MarkThreadReadResponse), args.Error(1)
}

func (d *DeliveryService) HasRead(ctx context.Context, messageID, userID int64) (bool, error) {
	args := d.Called(ctx, messageID, userID)
	return args.Bool(0), args.Error(1)
}

func (d *DeliveryService) ListReceipts(ctx context.Context, messageID int64) ([]service.ReadReceiptResponse, error) {
	args := d.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ReadReceiptResponse), args.Error(1)
}
