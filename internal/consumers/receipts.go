package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/mq"
	"go.uber.org/zap"
)

const ReceiptsQueue = "messaging.receipts"

const (
	AckKindDelivered = "delivered"
	AckKindRead      = "read"
)

// DeliveryAck is pushed by the realtime gateway once a client confirms it
// received or displayed a message. user_id is required for read acks only.
type DeliveryAck struct {
	MessageID int64  `json:"message_id"`
	UserID    int64  `json:"user_id"`
	Kind      string `json:"kind"`
	At        string `json:"at"`
}

type ReceiptsConsumer interface {
	Consume(ctx context.Context) error
}

type receiptsConsumer struct {
	delivery service.DeliveryService
	consumer mq.Consumer
	prefetch int
	logger   *zap.Logger
}

func NewReceiptsConsumer(delivery service.DeliveryService, consumer mq.Consumer, prefetch int,
	logger *zap.Logger) ReceiptsConsumer {
	return &receiptsConsumer{delivery: delivery, consumer: consumer, prefetch: prefetch, logger: logger}
}

func (r *receiptsConsumer) Consume(ctx context.Context) error {
	return r.consumer.Consume(ctx, r.prefetch, ReceiptsQueue, r.handleAck)
}

// handleAck drops malformed payloads and requeues only on storage errors.
func (r *receiptsConsumer) handleAck(ctx context.Context, body []byte) error {
	var ack DeliveryAck
	if err := json.Unmarshal(body, &ack); err != nil {
		r.logger.Warn("invalid delivery ack", zap.Error(err), zap.ByteString("body", body))
		return err
	}

	if ack.MessageID <= 0 {
		r.logger.Warn("delivery ack without message id", zap.ByteString("body", body))
		return errors.New("delivery ack missing message_id")
	}

	err := r.dispatch(ctx, ack)
	if err != nil && errors.Is(err, service.ErrDatabase) {
		return mq.Temporary(err)
	}

	return err
}

func (r *receiptsConsumer) dispatch(ctx context.Context, ack DeliveryAck) error {
	at := parseAckTime(ack.At)

	switch ack.Kind {
	case AckKindDelivered:
		return r.delivery.MarkDelivered(ctx, service.MarkDeliveredCommand{MessageID: ack.MessageID, At: at})

	case AckKindRead:
		if ack.UserID <= 0 {
			r.logger.Warn("read ack without user id", zap.Int64("messageID", ack.MessageID))
			return errors.New("read ack missing user_id")
		}

		cmd := service.MarkReadCommand{MessageID: ack.MessageID, ReaderID: ack.UserID, At: at}
		return r.delivery.MarkRead(ctx, cmd)

	default:
		r.logger.Warn("unknown ack kind",
			zap.String("kind", ack.Kind),
			zap.Int64("messageID", ack.MessageID))
		return errors.New("unknown ack kind: " + ack.Kind)
	}
}

// parseAckTime tolerates a missing or malformed timestamp; the service
// falls back to the processing time.
func parseAckTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}

	return t.UTC()
}
