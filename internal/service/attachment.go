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

type AttachmentService interface {
	AttachFile(ctx context.Context, cmd AttachFileCommand) (AttachmentResponse, error)
	ListAttachments(ctx context.Context, messageID int64) ([]AttachmentResponse, error)
}

type attachment struct {
	messageRepo    repository.MessageRepository
	attachmentRepo repository.AttachmentRepository
	logger         *zap.Logger
}

func NewAttachmentService(messageRepo repository.MessageRepository,
	attachmentRepo repository.AttachmentRepository, logger *zap.Logger) AttachmentService {
	return &attachment{messageRepo: messageRepo, attachmentRepo: attachmentRepo, logger: logger}
}

// AttachFile records file metadata against an existing message. The bytes
// themselves live in object storage; only the URL is kept here.
func (a *attachment) AttachFile(ctx context.Context, cmd AttachFileCommand) (AttachmentResponse, error) {
	if cmd.FileName == "" || cmd.FileType == "" || cmd.FileURL == "" {
		return AttachmentResponse{}, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("file_name, file_type and file_url are required"))
	}

	if cmd.FileSize <= 0 {
		return AttachmentResponse{}, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("file_size must be positive"))
	}

	msg, err := a.messageRepo.GetByID(cmd.MessageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return AttachmentResponse{}, NewServiceError(constants.ErrCodeMessageNotFound, err)
		}

		return AttachmentResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	if msg.IsDeleted {
		return AttachmentResponse{}, NewServiceError(constants.ErrCodeMessageNotFound,
			errors.New("message was deleted"))
	}

	record := model.Attachment{
		MessageID:    cmd.MessageID,
		FileName:     cmd.FileName,
		FileType:     cmd.FileType,
		FileSize:     cmd.FileSize,
		FileURL:      cmd.FileURL,
		ThumbnailURL: cmd.ThumbnailURL,
		UploadedAt:   time.Now().UTC(),
	}

	if err := a.attachmentRepo.Create(ctx, &record); err != nil {
		a.logger.Error("Failed to store attachment",
			zap.Int64("messageID", cmd.MessageID),
			zap.String("fileName", cmd.FileName),
			zap.Error(err))
		return AttachmentResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	a.logger.Info("Attachment stored",
		zap.Int64("attachmentID", record.ID),
		zap.Int64("messageID", cmd.MessageID),
		zap.String("fileType", cmd.FileType),
		zap.Int64("fileSize", cmd.FileSize))

	return attachmentResponseFrom(&record), nil
}

func (a *attachment) ListAttachments(ctx context.Context, messageID int64) ([]AttachmentResponse, error) {
	msg, err := a.messageRepo.GetByID(messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, NewServiceError(constants.ErrCodeMessageNotFound, err)
		}

		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	if msg.IsDeleted {
		return nil, NewServiceError(constants.ErrCodeMessageNotFound,
			errors.New("message was deleted"))
	}

	attachments, err := a.attachmentRepo.ListByMessage(messageID)
	if err != nil {
		a.logger.Error("Failed to list attachments",
			zap.Int64("messageID", messageID),
			zap.Error(err))
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	responses := make([]AttachmentResponse, 0, len(attachments))
	for i := range attachments {
		responses = append(responses, attachmentResponseFrom(&attachments[i]))
	}

	return responses, nil
}
