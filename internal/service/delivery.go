package service

import (
	"context"
	"errors"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/constants"
	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/NahoooMac/wedhabesha-sub007/internal/repository"
	"go.uber.org/zap"
)

// DeliveryService advances the per-message delivery state machine and keeps
// the read receipt ledger in step with it. MarkDelivered and MarkRead are
// driven by transport acks off the receipts queue; MarkThreadRead backs the
// bulk read endpoint.
type DeliveryService interface {
	MarkDelivered(ctx context.Context, cmd MarkDeliveredCommand) error
	MarkRead(ctx context.Context, cmd MarkReadCommand) error
	MarkThreadRead(ctx context.Context, cmd MarkThreadReadCommand) (MarkThreadReadResponse, error)
	HasRead(ctx context.Context, messageID, userID int64) (bool, error)
	ListReceipts(ctx context.Context, messageID int64) ([]ReadReceiptResponse, error)
}

type delivery struct {
	threadRepo  repository.ThreadRepository
	messageRepo repository.MessageRepository
	receiptRepo repository.ReadReceiptRepository
	txManager   repository.TxManager
	events      EventPublisher
	logger      *zap.Logger
}

func NewDeliveryService(threadRepo repository.ThreadRepository, messageRepo repository.MessageRepository,
	receiptRepo repository.ReadReceiptRepository, txManager repository.TxManager, events EventPublisher,
	logger *zap.Logger) DeliveryService {
	return &delivery{
		threadRepo:  threadRepo,
		messageRepo: messageRepo,
		receiptRepo: receiptRepo,
		txManager:   txManager,
		events:      events,
		logger:      logger,
	}
}

// MarkDelivered is idempotent. Acks for messages already delivered, already
// read, or no longer present are dropped without error.
func (d *delivery) MarkDelivered(ctx context.Context, cmd MarkDeliveredCommand) error {
	at := cmd.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	err := d.messageRepo.MarkDelivered(ctx, cmd.MessageID, at)
	if err == nil {
		d.publish(ctx, MessageEvent{
			Event:     EventMessageDelivered,
			MessageID: cmd.MessageID,
			At:        formatTime(at),
		})
		return nil
	}

	if errors.Is(err, repository.ErrNoRowsAffected) {
		d.logger.Debug("Delivered ack ignored, message missing or already past sent",
			zap.Int64("messageID", cmd.MessageID))
		return nil
	}

	d.logger.Error("Failed to mark message delivered",
		zap.Int64("messageID", cmd.MessageID),
		zap.Error(err))

	return ErrDatabase
}

// MarkRead advances the message to read and records the reader's receipt in
// the same transaction. The receipt is recorded even when the message was
// already read, so a second device still lands in the ledger.
func (d *delivery) MarkRead(ctx context.Context, cmd MarkReadCommand) error {
	at := cmd.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	advanced := false

	err := d.txManager.WithTx(ctx, func(ctx context.Context) error {
		err := d.messageRepo.MarkRead(ctx, cmd.MessageID, at)
		if err == nil {
			advanced = true
		} else if !errors.Is(err, repository.ErrNoRowsAffected) {
			return err
		}

		receipt := model.ReadReceipt{
			MessageID: cmd.MessageID,
			UserID:    cmd.ReaderID,
			ReadAt:    at,
		}

		return d.receiptRepo.Record(ctx, &receipt)
	})
	if err != nil {
		d.logger.Error("Failed to mark message read",
			zap.Int64("messageID", cmd.MessageID),
			zap.Int64("readerID", cmd.ReaderID),
			zap.Error(err))
		return ErrDatabase
	}

	if advanced {
		d.publish(ctx, MessageEvent{
			Event:     EventMessageRead,
			MessageID: cmd.MessageID,
			UserID:    cmd.ReaderID,
			At:        formatTime(at),
		})
	}

	return nil
}

// MarkThreadRead marks every unread incoming message in the thread as read
// and writes the matching receipts. Messages read in the meantime are
// skipped by the status guard, so replays only top up what is missing.
func (d *delivery) MarkThreadRead(ctx context.Context, cmd MarkThreadReadCommand) (MarkThreadReadResponse, error) {
	readerType := model.UserType(cmd.ReaderType)
	if !readerType.Valid() {
		return MarkThreadReadResponse{}, NewServiceError(constants.ErrCodeInvalidUserType,
			errors.New("unknown reader type: "+cmd.ReaderType))
	}

	thread, err := d.threadRepo.GetByID(cmd.ThreadID)
	if err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return MarkThreadReadResponse{}, NewServiceError(constants.ErrCodeThreadNotFound, err)
		}

		return MarkThreadReadResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if !thread.IsParticipant(cmd.ReaderID, readerType) {
		return MarkThreadReadResponse{}, NewServiceError(constants.ErrCodeNotParticipant,
			errors.New("reader does not belong to this thread"))
	}

	at := cmd.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	ids, err := d.messageRepo.ListUnreadIncoming(cmd.ThreadID, cmd.ReaderID, readerType)
	if err != nil {
		d.logger.Error("Failed to list unread messages",
			zap.Int64("threadID", cmd.ThreadID),
			zap.Error(err))
		return MarkThreadReadResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if len(ids) == 0 {
		return MarkThreadReadResponse{MarkedCount: 0}, nil
	}

	var marked int64

	err = d.txManager.WithTx(ctx, func(ctx context.Context) error {
		var txErr error

		marked, txErr = d.messageRepo.MarkManyRead(ctx, ids, at)
		if txErr != nil {
			return txErr
		}

		return d.receiptRepo.RecordMany(ctx, ids, cmd.ReaderID, at)
	})
	if err != nil {
		d.logger.Error("Failed to mark thread read",
			zap.Int64("threadID", cmd.ThreadID),
			zap.Int64("readerID", cmd.ReaderID),
			zap.Error(err))
		return MarkThreadReadResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	d.publish(ctx, MessageEvent{
		Event:    EventThreadRead,
		ThreadID: cmd.ThreadID,
		UserID:   cmd.ReaderID,
		Count:    marked,
		At:       formatTime(at),
	})

	d.logger.Info("Thread marked read",
		zap.Int64("threadID", cmd.ThreadID),
		zap.Int64("readerID", cmd.ReaderID),
		zap.Int64("marked", marked))

	return MarkThreadReadResponse{MarkedCount: marked}, nil
}

func (d *delivery) HasRead(ctx context.Context, messageID, userID int64) (bool, error) {
	read, err := d.receiptRepo.Exists(messageID, userID)
	if err != nil {
		d.logger.Error("Failed to check read receipt",
			zap.Int64("messageID", messageID),
			zap.Int64("userID", userID),
			zap.Error(err))
		return false, NewServiceError(ErrCodeDatabase, err)
	}

	return read, nil
}

func (d *delivery) ListReceipts(ctx context.Context, messageID int64) ([]ReadReceiptResponse, error) {
	if _, err := d.messageRepo.GetByID(messageID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, NewServiceError(constants.ErrCodeMessageNotFound, err)
		}

		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	receipts, err := d.receiptRepo.ListByMessage(messageID)
	if err != nil {
		d.logger.Error("Failed to list read receipts",
			zap.Int64("messageID", messageID),
			zap.Error(err))
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	responses := make([]ReadReceiptResponse, 0, len(receipts))
	for i := range receipts {
		responses = append(responses, ReadReceiptResponse{
			MessageID: receipts[i].MessageID,
			UserID:    receipts[i].UserID,
			ReadAt:    formatTime(receipts[i].ReadAt),
		})
	}

	return responses, nil
}

func (d *delivery) publish(ctx context.Context, event MessageEvent) {
	if err := d.events.Publish(ctx, event); err != nil {
		d.logger.Warn("Failed to publish delivery event",
			zap.String("event", event.Event),
			zap.Int64("messageID", event.MessageID),
			zap.Error(err))
	}
}
