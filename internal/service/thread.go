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

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ThreadService interface {
	OpenThread(ctx context.Context, cmd OpenThreadCommand) (OpenThreadResponse, error)
	GetThread(ctx context.Context, threadID int64) (ThreadResponse, error)
	ListThreads(ctx context.Context, query ListThreadsQuery) (ListThreadsResponse, error)
	DeactivateThread(ctx context.Context, threadID int64) error
}

type thread struct {
	threadRepo  repository.ThreadRepository
	messageRepo repository.MessageRepository
	logger      *zap.Logger
}

func NewThreadService(threadRepo repository.ThreadRepository, messageRepo repository.MessageRepository,
	logger *zap.Logger) ThreadService {
	return &thread{threadRepo: threadRepo, messageRepo: messageRepo, logger: logger}
}

// OpenThread returns the thread for a couple/vendor pair, creating it when
// it does not exist yet. Concurrent opens for the same pair converge on the
// row that won the insert.
func (t *thread) OpenThread(ctx context.Context, cmd OpenThreadCommand) (OpenThreadResponse, error) {
	if cmd.CoupleID <= 0 || cmd.VendorID <= 0 {
		return OpenThreadResponse{}, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("couple_id and vendor_id are required"))
	}

	existing, err := t.threadRepo.GetByPair(cmd.CoupleID, cmd.VendorID)
	if err == nil {
		return OpenThreadResponse{Thread: threadResponseFrom(existing), Created: false}, nil
	}

	if !errors.Is(err, repository.ErrThreadNotFound) {
		t.logger.Error("Failed to look up thread",
			zap.Int64("coupleID", cmd.CoupleID),
			zap.Int64("vendorID", cmd.VendorID),
			zap.Error(err))
		return OpenThreadResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	now := time.Now().UTC()
	created := model.MessageThread{
		CoupleID:      cmd.CoupleID,
		VendorID:      cmd.VendorID,
		CreatedAt:     now,
		UpdatedAt:     now,
		LastMessageAt: now,
		IsActive:      true,
		LeadID:        cmd.LeadID,
		ServiceType:   cmd.ServiceType,
	}

	err = t.threadRepo.Create(ctx, &created)
	if err == nil {
		t.logger.Info("Thread created",
			zap.Int64("threadID", created.ID),
			zap.Int64("coupleID", cmd.CoupleID),
			zap.Int64("vendorID", cmd.VendorID))
		return OpenThreadResponse{Thread: threadResponseFrom(&created), Created: true}, nil
	}

	if errors.Is(err, repository.ErrThreadDuplicate) {
		t.logger.Debug("Lost thread create race, returning existing row",
			zap.Int64("coupleID", cmd.CoupleID),
			zap.Int64("vendorID", cmd.VendorID))

		winner, lookupErr := t.threadRepo.GetByPair(cmd.CoupleID, cmd.VendorID)
		if lookupErr != nil {
			return OpenThreadResponse{}, NewServiceError(ErrCodeDatabase, lookupErr)
		}

		return OpenThreadResponse{Thread: threadResponseFrom(winner), Created: false}, nil
	}

	t.logger.Error("Failed to create thread",
		zap.Int64("coupleID", cmd.CoupleID),
		zap.Int64("vendorID", cmd.VendorID),
		zap.Error(err))

	return OpenThreadResponse{}, NewServiceError(ErrCodeDatabase, err)
}

func (t *thread) GetThread(ctx context.Context, threadID int64) (ThreadResponse, error) {
	found, err := t.threadRepo.GetByID(threadID)
	if err == nil {
		return threadResponseFrom(found), nil
	}

	if errors.Is(err, repository.ErrThreadNotFound) {
		return ThreadResponse{}, NewServiceError(constants.ErrCodeThreadNotFound, err)
	}

	t.logger.Error("Failed to load thread", zap.Int64("threadID", threadID), zap.Error(err))

	return ThreadResponse{}, NewServiceError(ErrCodeDatabase, err)
}

func (t *thread) ListThreads(ctx context.Context, query ListThreadsQuery) (ListThreadsResponse, error) {
	userType := model.UserType(query.UserType)
	if !userType.Valid() {
		return ListThreadsResponse{}, NewServiceError(constants.ErrCodeInvalidUserType,
			errors.New("unknown user type: "+query.UserType))
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	threads, err := t.threadRepo.ListForUser(query.UserID, userType, limit, offset)
	if err != nil {
		t.logger.Error("Failed to list threads",
			zap.Int64("userID", query.UserID),
			zap.String("userType", query.UserType),
			zap.Error(err))
		return ListThreadsResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	total, err := t.threadRepo.CountForUser(query.UserID, userType)
	if err != nil {
		t.logger.Error("Failed to count threads",
			zap.Int64("userID", query.UserID),
			zap.Error(err))
		return ListThreadsResponse{}, NewServiceError(ErrCodeDatabase, err)
	}

	summaries := make([]ThreadSummary, 0, len(threads))
	for i := range threads {
		unread, err := t.messageRepo.CountUnread(threads[i].ID, query.UserID, userType)
		if err != nil {
			t.logger.Error("Failed to count unread messages",
				zap.Int64("threadID", threads[i].ID),
				zap.Error(err))
			return ListThreadsResponse{}, NewServiceError(ErrCodeDatabase, err)
		}

		summaries = append(summaries, ThreadSummary{
			ThreadResponse: threadResponseFrom(&threads[i]),
			UnreadCount:    unread,
		})
	}

	return ListThreadsResponse{Threads: summaries, Total: total}, nil
}

// DeactivateThread archives a thread. Deactivating an already inactive
// thread is a no-op.
func (t *thread) DeactivateThread(ctx context.Context, threadID int64) error {
	err := t.threadRepo.Deactivate(ctx, threadID)
	if err == nil {
		t.logger.Info("Thread deactivated", zap.Int64("threadID", threadID))
		return nil
	}

	if errors.Is(err, repository.ErrNoRowsAffected) {
		if _, lookupErr := t.threadRepo.GetByID(threadID); lookupErr != nil {
			if errors.Is(lookupErr, repository.ErrThreadNotFound) {
				return NewServiceError(constants.ErrCodeThreadNotFound, lookupErr)
			}

			return NewServiceError(ErrCodeDatabase, lookupErr)
		}

		t.logger.Debug("Thread already inactive", zap.Int64("threadID", threadID))
		return nil
	}

	t.logger.Error("Failed to deactivate thread", zap.Int64("threadID", threadID), zap.Error(err))

	return NewServiceError(ErrCodeDatabase, err)
}
