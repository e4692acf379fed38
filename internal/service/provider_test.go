package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/config"
	"github.com/NahoooMac/wedhabesha-sub007/internal/mocks"
	"github.com/NahoooMac/wedhabesha-sub007/internal/service"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/smsprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestProvider_SendWithRetry(t *testing.T) {
	logger := zap.NewNop()

	cfg := &config.Config{
		SMS: smsprovider.Config{Timeout: 5 * time.Second, MaxRetry: 3},
	}

	toPhone := "+251911223344"
	text := "Hi Dawit Tesfaye, you have an unread message from a couple on WedHabesha. Open the app to reply."

	t.Run("sends on first attempt", func(t *testing.T) {
		mockProvider := &mocks.SMSProvider{}

		svc := service.NewProviderService(mockProvider, logger, cfg)

		mockProvider.On("Send", mock.Anything, toPhone, text).
			Return(smsprovider.Response{MessageID: "prov-100", Status: "queued"}, nil)

		response, err := svc.SendWithRetry(context.Background(), toPhone, text)

		assert.NoError(t, err)
		assert.Equal(t, "prov-100", response.MessageID)
		mockProvider.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("retries transient failures until one succeeds", func(t *testing.T) {
		mockProvider := &mocks.SMSProvider{}

		svc := service.NewProviderService(mockProvider, logger, cfg)

		mockProvider.On("Send", mock.Anything, toPhone, text).
			Return(smsprovider.Response{}, errors.New(smsprovider.ErrorCodeNetworkError)).Twice()
		mockProvider.On("Send", mock.Anything, toPhone, text).
			Return(smsprovider.Response{MessageID: "prov-101"}, nil).Once()

		response, err := svc.SendWithRetry(context.Background(), toPhone, text)

		assert.NoError(t, err)
		assert.Equal(t, "prov-101", response.MessageID)
		mockProvider.AssertNumberOfCalls(t, "Send", 3)
	})

	t.Run("stops immediately on invalid number", func(t *testing.T) {
		mockProvider := &mocks.SMSProvider{}

		svc := service.NewProviderService(mockProvider, logger, cfg)

		mockProvider.On("Send", mock.Anything, toPhone, text).
			Return(smsprovider.Response{}, errors.New(smsprovider.ErrorCodeInvalidNumber))

		_, err := svc.SendWithRetry(context.Background(), toPhone, text)

		assert.Error(t, err)
		assert.EqualError(t, err, smsprovider.ErrorCodeInvalidNumber)
		mockProvider.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("returns last error after exhausting retries", func(t *testing.T) {
		mockProvider := &mocks.SMSProvider{}

		svc := service.NewProviderService(mockProvider, logger, cfg)

		mockProvider.On("Send", mock.Anything, toPhone, text).
			Return(smsprovider.Response{}, errors.New(smsprovider.ErrorCodeServerError)).Times(3)

		_, err := svc.SendWithRetry(context.Background(), toPhone, text)

		assert.Error(t, err)
		assert.EqualError(t, err, smsprovider.ErrorCodeServerError)
		mockProvider.AssertNumberOfCalls(t, "Send", 3)
	})

	t.Run("gives up between attempts when cancelled", func(t *testing.T) {
		mockProvider := &mocks.SMSProvider{}

		svc := service.NewProviderService(mockProvider, logger, cfg)

		ctx, cancel := context.WithCancel(context.Background())

		mockProvider.On("Send", mock.Anything, toPhone, text).
			Return(smsprovider.Response{}, errors.New(smsprovider.ErrorCodeNetworkError)).
			Run(func(args mock.Arguments) {
				cancel()
			})

		_, err := svc.SendWithRetry(ctx, toPhone, text)

		assert.Error(t, err)
		assert.Equal(t, context.Canceled, err)
		mockProvider.AssertNumberOfCalls(t, "Send", 1)
	})
}
