package publishers

import (
	"context"
	"encoding/json"

	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/mq"
	"go.uber.org/zap"
)

// EventsQueue feeds the realtime gateway that fans events out to connected
// clients over websockets.
const EventsQueue = "messaging.events"

type eventPublisher struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewEventPublisher(publisher mq.Publisher, logger *zap.Logger) service.EventPublisher {
	return &eventPublisher{publisher: publisher, logger: logger}
}

func (e *eventPublisher) Publish(ctx context.Context, event service.MessageEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := e.publisher.Publish(ctx, "", EventsQueue, body); err != nil {
		return err
	}

	e.logger.Debug("Event published",
		zap.String("event", event.Event),
		zap.Int64("messageID", event.MessageID),
		zap.Int64("threadID", event.ThreadID))

	return nil
}
