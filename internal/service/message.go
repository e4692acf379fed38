package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/constants"
	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/NahoooMac/wedhabesha-sub007/internal/repository"
	"go.uber.org/zap"
)

type MessageService interface {
	AppendMessage(ctx context.Context, cmd AppendMessageCommand) (AppendMessageResponse, error)
	GetMessage(ctx context.Context, messageID int64) (MessageResponse, error)
	ListMessages(ctx context.Context, query ListMessagesQuery) (ListMessagesResponse, error)
	DeleteMessage(ctx context.Context, cmd DeleteMessageCommand) error
}

type message struct {
	threadRepo   repository.ThreadRepository
	messageRepo  repository.MessageRepository
	presenceRepo repository.PresenceRepository
	txManager    repository.TxManager
	events       EventPublisher
	logger       *zap.Logger
}

func NewMessageService(threadRepo repository.ThreadRepository, messageRepo repository.MessageRepository,
	presenceRepo repository.PresenceRepository, txManager repository.TxManager, events EventPublisher,
	logger *zap.Logger) MessageService {
	return &message{
		threadRepo:   threadRepo,
		messageRepo:  messageRepo,
		presenceRepo: presenceRepo,
		txManager:    txManager,
		events:       events,
		logger:       logger,
	}
}

func (m *message) AppendMessage(ctx context.Context, cmd AppendMessageCommand) (AppendMessageResponse, error) {
	senderType := model.UserType(cmd.SenderType)
	if !senderType.Valid() {
		return AppendMessageResponse{}, NewServiceError(constants.ErrCodeInvalidUserType,
			errors.New("unknown sender type: "+cmd.SenderType))
	}

	messageType := model.MessageType(cmd.MessageType)
	if cmd.MessageType == "" {
		messageType = model.MessageTypeText
	}
	if !messageType.Valid() {
		return AppendMessageResponse{}, NewServiceError(constants.ErrCodeInvalidMessageType,
			errors.New("unknown message type: "+cmd.MessageType))
	}

	if requiresContent(messageType) && strings.TrimSpace(cmd.Content) == "" {
		return AppendMessageResponse{}, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("content is required for "+string(messageType)+" messages"))
	}

	thread, err := m.threadRepo.GetByID(cmd.ThreadID)
	if err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return AppendMessageResponse{}, NewServiceError(constants.ErrCodeThreadNotFound, err)
		}

		m.logger.Error("Failed to load thread for append",
			zap.Int64("threadID", cmd.ThreadID),
			zap.Error(err))
		return AppendMessageResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if !thread.IsParticipant(cmd.SenderID, senderType) {
		return AppendMessageResponse{}, NewServiceError(constants.ErrCodeNotParticipant,
			errors.New("sender does not belong to this thread"))
	}

	if !thread.IsActive {
		return AppendMessageResponse{}, NewServiceError(constants.ErrCodeThreadInactive,
			errors.New("thread is deactivated"))
	}

	now := time.Now().UTC()
	msg := model.Message{
		ThreadID:       thread.ID,
		SenderID:       cmd.SenderID,
		SenderType:     senderType,
		Content:        cmd.Content,
		MessageType:    messageType,
		CreatedAt:      now,
		UpdatedAt:      now,
		Status:         model.DeliveryStatusSent,
		DeliveryStatus: model.DeliveryStatusSent,
	}

	err = m.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := m.messageRepo.Create(ctx, &msg); err != nil {
			return err
		}

		return m.threadRepo.AdvanceLastMessageAt(ctx, thread.ID, now)
	})
	if err != nil {
		m.logger.Error("Failed to append message",
			zap.Int64("threadID", thread.ID),
			zap.Int64("senderID", cmd.SenderID),
			zap.Error(err))
		return AppendMessageResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	recipientID := thread.ParticipantID(senderType.Other())
	recipientOnline := m.recipientOnline(recipientID)

	m.publishCreated(ctx, &msg, recipientID)

	m.logger.Info("Message appended",
		zap.Int64("messageID", msg.ID),
		zap.Int64("threadID", thread.ID),
		zap.Int64("senderID", cmd.SenderID),
		zap.String("senderType", string(senderType)),
		zap.Bool("recipientOnline", recipientOnline))

	return AppendMessageResponse{Message: messageResponseFrom(&msg), RecipientOnline: recipientOnline}, nil
}

func (m *message) GetMessage(ctx context.Context, messageID int64) (MessageResponse, error) {
	msg, err := m.messageRepo.GetByID(messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return MessageResponse{}, NewServiceError(constants.ErrCodeMessageNotFound, err)
		}

		m.logger.Error("Failed to load message", zap.Int64("messageID", messageID), zap.Error(err))
		return MessageResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if msg.IsDeleted {
		return MessageResponse{}, NewServiceError(constants.ErrCodeMessageNotFound,
			errors.New("message was deleted"))
	}

	return messageResponseFrom(msg), nil
}

func (m *message) ListMessages(ctx context.Context, query ListMessagesQuery) (ListMessagesResponse, error) {
	if _, err := m.threadRepo.GetByID(query.ThreadID); err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return ListMessagesResponse{}, NewServiceError(constants.ErrCodeThreadNotFound, err)
		}

		return ListMessagesResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	messages, err := m.messageRepo.ListByThread(query.ThreadID, query.BeforeID, limit)
	if err != nil {
		m.logger.Error("Failed to list messages",
			zap.Int64("threadID", query.ThreadID),
			zap.Error(err))
		return ListMessagesResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	total, err := m.messageRepo.CountByThread(query.ThreadID)
	if err != nil {
		m.logger.Error("Failed to count messages",
			zap.Int64("threadID", query.ThreadID),
			zap.Error(err))
		return ListMessagesResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, messageResponseFrom(&messages[i]))
	}

	return ListMessagesResponse{Messages: responses, Total: total}, nil
}

// DeleteMessage hides a message from retrieval. Only the original sender
// may delete, and deleting twice is a no-op.
func (m *message) DeleteMessage(ctx context.Context, cmd DeleteMessageCommand) error {
	msg, err := m.messageRepo.GetByID(cmd.MessageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return NewServiceError(constants.ErrCodeMessageNotFound, err)
		}

		return NewServiceError(ErrCodeDatabase, err)
	}

	if msg.SenderID != cmd.RequesterID || string(msg.SenderType) != cmd.RequesterType {
		return NewServiceError(constants.ErrCodeNotMessageSender,
			errors.New("requester did not send this message"))
	}

	if msg.IsDeleted {
		return nil
	}

	err = m.messageRepo.SoftDelete(ctx, cmd.MessageID, time.Now().UTC())
	if err == nil {
		m.logger.Info("Message deleted",
			zap.Int64("messageID", cmd.MessageID),
			zap.Int64("requesterID", cmd.RequesterID))
		return nil
	}

	if errors.Is(err, repository.ErrNoRowsAffected) {
		return nil
	}

	m.logger.Error("Failed to delete message", zap.Int64("messageID", cmd.MessageID), zap.Error(err))

	return NewServiceError(ErrCodeDatabase, err)
}

func (m *message) recipientOnline(recipientID int64) bool {
	status, err := m.presenceRepo.Get(recipientID)
	if err != nil {
		if !errors.Is(err, repository.ErrConnectionNotFound) {
			m.logger.Warn("Failed to check recipient presence",
				zap.Int64("recipientID", recipientID),
				zap.Error(err))
		}

		return false
	}

	return status.IsOnline
}

func (m *message) publishCreated(ctx context.Context, msg *model.Message, recipientID int64) {
	event := MessageEvent{
		Event:       EventMessageCreated,
		MessageID:   msg.ID,
		ThreadID:    msg.ThreadID,
		SenderID:    msg.SenderID,
		RecipientID: recipientID,
		At:          formatTime(msg.CreatedAt),
	}

	if err := m.events.Publish(ctx, event); err != nil {
		m.logger.Warn("Failed to publish message created event",
			zap.Int64("messageID", msg.ID),
			zap.Error(err))
	}
}

func requiresContent(messageType model.MessageType) bool {
	return messageType == model.MessageTypeText || messageType == model.MessageTypeSystem
}
