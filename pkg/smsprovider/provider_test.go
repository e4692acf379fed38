package smsprovider_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/pkg/mocks"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/smsprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func matchSendBody(to, text string) interface{} {
	return mock.MatchedBy(func(body interface{}) bool {
		buf, ok := body.(*bytes.Buffer)
		if !ok {
			return false
		}

		var req smsprovider.Request
		if err := json.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(&req); err != nil {
			return false
		}

		return req.To == to && req.Text == text
	})
}

func TestSMSProvider_Send(t *testing.T) {
	cfg := smsprovider.Config{
		URL:      "https://sms.gateway.test/api/v1/sms/send",
		APIKey:   "test-key",
		SenderID: "WedHabesha",
		Timeout:  5 * time.Second,
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer test-key",
	}

	to := "+251911000000"
	text := "you have an unread message"

	t.Run("successful send", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := smsprovider.NewSMSProvider(cfg, mockClient)

		body := `{"message_id": "prov-123", "status": "sent", "provider": "gateway"}`
		successResponse := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, text),
			headers).Return(successResponse, nil)

		response, err := provider.Send(context.Background(), to, text)

		assert.NoError(t, err)
		assert.Equal(t, "prov-123", response.MessageID)
		assert.Equal(t, "sent", response.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("timeout error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := smsprovider.NewSMSProvider(cfg, mockClient)

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, text),
			headers).Return((*http.Response)(nil), context.DeadlineExceeded)

		response, err := provider.Send(context.Background(), to, text)

		assert.Error(t, err)
		assert.EqualError(t, err, smsprovider.ErrorCodeTimeout)
		assert.Empty(t, response)
		mockClient.AssertExpectations(t)
	})

	t.Run("network error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := smsprovider.NewSMSProvider(cfg, mockClient)

		networkErr := errors.New("connection refused")

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, text),
			headers).Return((*http.Response)(nil), networkErr)

		response, err := provider.Send(context.Background(), to, text)

		assert.Error(t, err)
		assert.EqualError(t, err, smsprovider.ErrorCodeNetworkError)
		assert.Empty(t, response)
		mockClient.AssertExpectations(t)
	})

	t.Run("invalid number on 400", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := smsprovider.NewSMSProvider(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 400,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, text),
			headers).Return(resp, nil)

		response, err := provider.Send(context.Background(), to, text)

		assert.Error(t, err)
		assert.EqualError(t, err, smsprovider.ErrorCodeInvalidNumber)
		assert.Empty(t, response)
		mockClient.AssertExpectations(t)
	})

	t.Run("invalid number on 422", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := smsprovider.NewSMSProvider(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 422,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, text),
			headers).Return(resp, nil)

		response, err := provider.Send(context.Background(), to, text)

		assert.Error(t, err)
		assert.EqualError(t, err, smsprovider.ErrorCodeInvalidNumber)
		assert.Empty(t, response)
		mockClient.AssertExpectations(t)
	})

	t.Run("server error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := smsprovider.NewSMSProvider(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 500,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, text),
			headers).Return(resp, nil)

		response, err := provider.Send(context.Background(), to, text)

		assert.Error(t, err)
		assert.EqualError(t, err, smsprovider.ErrorCodeServerError)
		assert.Empty(t, response)
		mockClient.AssertExpectations(t)
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := smsprovider.NewSMSProvider(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"message_id":`)),
		}

		mockClient.On("Post", context.Background(), cfg.URL, matchSendBody(to, text),
			headers).Return(resp, nil)

		response, err := provider.Send(context.Background(), to, text)

		assert.Error(t, err)
		assert.EqualError(t, err, smsprovider.ErrorCodeServerError)
		assert.Empty(t, response)
		mockClient.AssertExpectations(t)
	})
}
