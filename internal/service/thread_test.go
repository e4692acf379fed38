package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/constants"
	"github.com/NahoooMac/wedhabesha-sub007/internal/mocks"
	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/NahoooMac/wedhabesha-sub007/internal/repository"
	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestThread_OpenThread(t *testing.T) {
	logger := zap.NewNop()

	cmd := service.OpenThreadCommand{CoupleID: 10, VendorID: 20}

	t.Run("creates thread when pair has none", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		mockThreadRepo.On("GetByPair", int64(10), int64(20)).
			Return((*model.MessageThread)(nil), repository.ErrThreadNotFound)

		mockThreadRepo.On("Create", context.Background(),
			mock.MatchedBy(func(thread *model.MessageThread) bool {
				return thread.CoupleID == 10 &&
					thread.VendorID == 20 &&
					thread.IsActive &&
					!thread.LastMessageAt.IsZero()
			})).Run(func(args mock.Arguments) {
			thread := args.Get(1).(*model.MessageThread)
			thread.ID = 1
		}).Return(nil)

		resp, err := svc.OpenThread(context.Background(), cmd)

		assert.NoError(t, err)
		assert.True(t, resp.Created)
		assert.Equal(t, int64(1), resp.Thread.ThreadID)
		assert.Equal(t, int64(10), resp.Thread.CoupleID)
		assert.Equal(t, int64(20), resp.Thread.VendorID)

		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("returns existing thread without creating", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		existing := &model.MessageThread{ID: 7, CoupleID: 10, VendorID: 20, IsActive: true}

		mockThreadRepo.On("GetByPair", int64(10), int64(20)).Return(existing, nil)

		resp, err := svc.OpenThread(context.Background(), cmd)

		assert.NoError(t, err)
		assert.False(t, resp.Created)
		assert.Equal(t, int64(7), resp.Thread.ThreadID)

		mockThreadRepo.AssertExpectations(t)
		mockThreadRepo.AssertNotCalled(t, "Create")
	})

	t.Run("returns winner row after losing create race", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		winner := &model.MessageThread{ID: 9, CoupleID: 10, VendorID: 20, IsActive: true}

		mockThreadRepo.On("GetByPair", int64(10), int64(20)).
			Return((*model.MessageThread)(nil), repository.ErrThreadNotFound).Once()

		mockThreadRepo.On("Create", context.Background(), mock.AnythingOfType("*model.MessageThread")).
			Return(repository.ErrThreadDuplicate)

		mockThreadRepo.On("GetByPair", int64(10), int64(20)).Return(winner, nil).Once()

		resp, err := svc.OpenThread(context.Background(), cmd)

		assert.NoError(t, err)
		assert.False(t, resp.Created)
		assert.Equal(t, int64(9), resp.Thread.ThreadID)

		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("rejects missing participant ids", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		_, err := svc.OpenThread(context.Background(), service.OpenThreadCommand{CoupleID: 10})

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeValidationFailed, serviceErr.Code)

		mockThreadRepo.AssertNotCalled(t, "GetByPair")
		mockThreadRepo.AssertNotCalled(t, "Create")
	})

	t.Run("returns database error when lookup fails", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		dbError := errors.New("database connection failed")

		mockThreadRepo.On("GetByPair", int64(10), int64(20)).
			Return((*model.MessageThread)(nil), dbError)

		_, err := svc.OpenThread(context.Background(), cmd)

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, service.ErrCodeDatabase, serviceErr.Code)

		mockThreadRepo.AssertNotCalled(t, "Create")
	})
}

func TestThread_GetThread(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns thread by id", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		serviceType := "catering"
		found := &model.MessageThread{
			ID:          3,
			CoupleID:    10,
			VendorID:    20,
			IsActive:    true,
			ServiceType: &serviceType,
		}

		mockThreadRepo.On("GetByID", int64(3)).Return(found, nil)

		resp, err := svc.GetThread(context.Background(), 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.ThreadID)
		assert.Equal(t, "catering", *resp.ServiceType)

		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		mockThreadRepo.On("GetByID", int64(99)).
			Return((*model.MessageThread)(nil), repository.ErrThreadNotFound)

		_, err := svc.GetThread(context.Background(), 99)

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeThreadNotFound, serviceErr.Code)
	})
}

func TestThread_ListThreads(t *testing.T) {
	logger := zap.NewNop()

	query := service.ListThreadsQuery{UserID: 10, UserType: "couple"}

	t.Run("lists threads with unread counts", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		now := time.Now().UTC()
		threads := []model.MessageThread{
			{ID: 1, CoupleID: 10, VendorID: 20, IsActive: true, LastMessageAt: now},
			{ID: 2, CoupleID: 10, VendorID: 30, IsActive: true, LastMessageAt: now.Add(-time.Hour)},
		}

		mockThreadRepo.On("ListForUser", int64(10), model.UserTypeCouple, 20, 0).Return(threads, nil)
		mockThreadRepo.On("CountForUser", int64(10), model.UserTypeCouple).Return(2, nil)
		mockMessageRepo.On("CountUnread", int64(1), int64(10), model.UserTypeCouple).Return(3, nil)
		mockMessageRepo.On("CountUnread", int64(2), int64(10), model.UserTypeCouple).Return(0, nil)

		resp, err := svc.ListThreads(context.Background(), query)

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Len(t, resp.Threads, 2)
		assert.Equal(t, 3, resp.Threads[0].UnreadCount)
		assert.Equal(t, 0, resp.Threads[1].UnreadCount)

		mockThreadRepo.AssertExpectations(t)
		mockMessageRepo.AssertExpectations(t)
	})

	t.Run("caps limit at maximum page size", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		mockThreadRepo.On("ListForUser", int64(10), model.UserTypeCouple, 100, 0).
			Return([]model.MessageThread{}, nil)
		mockThreadRepo.On("CountForUser", int64(10), model.UserTypeCouple).Return(0, nil)

		oversized := service.ListThreadsQuery{UserID: 10, UserType: "couple", Limit: 500}

		resp, err := svc.ListThreads(context.Background(), oversized)

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Total)

		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown user type", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		_, err := svc.ListThreads(context.Background(), service.ListThreadsQuery{UserID: 10, UserType: "planner"})

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInvalidUserType, serviceErr.Code)

		mockThreadRepo.AssertNotCalled(t, "ListForUser")
	})
}

func TestThread_DeactivateThread(t *testing.T) {
	logger := zap.NewNop()

	t.Run("deactivates active thread", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		mockThreadRepo.On("Deactivate", context.Background(), int64(5)).Return(nil)

		err := svc.DeactivateThread(context.Background(), 5)

		assert.NoError(t, err)
		mockThreadRepo.AssertExpectations(t)
		mockThreadRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("treats already inactive thread as no-op", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		inactive := &model.MessageThread{ID: 5, CoupleID: 10, VendorID: 20, IsActive: false}

		mockThreadRepo.On("Deactivate", context.Background(), int64(5)).Return(repository.ErrNoRowsAffected)
		mockThreadRepo.On("GetByID", int64(5)).Return(inactive, nil)

		err := svc.DeactivateThread(context.Background(), 5)

		assert.NoError(t, err)
		mockThreadRepo.AssertExpectations(t)
	})

	t.Run("returns not found for unknown thread", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		mockThreadRepo.On("Deactivate", context.Background(), int64(99)).Return(repository.ErrNoRowsAffected)
		mockThreadRepo.On("GetByID", int64(99)).
			Return((*model.MessageThread)(nil), repository.ErrThreadNotFound)

		err := svc.DeactivateThread(context.Background(), 99)

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeThreadNotFound, serviceErr.Code)
	})

	t.Run("returns database error when deactivate fails", func(t *testing.T) {
		mockThreadRepo := &mocks.ThreadRepository{}
		mockMessageRepo := &mocks.MessageRepository{}

		svc := service.NewThreadService(mockThreadRepo, mockMessageRepo, logger)

		dbError := errors.New("database connection failed")

		mockThreadRepo.On("Deactivate", context.Background(), int64(5)).Return(dbError)

		err := svc.DeactivateThread(context.Background(), 5)

		assert.Error(t, err)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, service.ErrCodeDatabase, serviceErr.Code)
	})
}
