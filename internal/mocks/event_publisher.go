package mocks

import (
	"context"

	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/stretchr/testify/mock"
)

type EventPublisher struct {
	mock.Mock
}

func (e *EventPublisher) Publish(ctx context.Context, event service.MessageEvent) error {
	args := e.Called(ctx, event)
	return args.Error(0)
}
