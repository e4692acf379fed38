package directory_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/pkg/directory"
	"github.com/NahoooMac/wedhabesha-sub007/pkg/mocks"
	"github.com/stretchr/testify/assert"
)

func TestClient_GetContact(t *testing.T) {
	cfg := directory.Config{
		BaseURL: "https://directory.test",
		Timeout: 3 * time.Second,
		APIKey:  "test-key",
	}

	contactURL := "https://directory.test/internal/v1/contacts/couple/42"
	headers := map[string]string{
		"Accept":    "application/json",
		"X-API-Key": "test-key",
	}

	t.Run("successful lookup", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := directory.NewClient(cfg, mockClient)

		body := `{"user_id": 42, "user_type": "couple", "full_name": "Saron Bekele", "phone": "+251911000000"}`
		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Get", context.Background(), contactURL, headers).Return(resp, nil)

		contact, err := client.GetContact(context.Background(), 42, "couple")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), contact.UserID)
		assert.Equal(t, "Saron Bekele", contact.FullName)
		assert.Equal(t, "+251911000000", contact.Phone)
		mockClient.AssertExpectations(t)
	})

	t.Run("contact not found", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := directory.NewClient(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 404,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Get", context.Background(), contactURL, headers).Return(resp, nil)

		contact, err := client.GetContact(context.Background(), 42, "couple")

		assert.Error(t, err)
		assert.Equal(t, directory.ErrContactNotFound, err)
		assert.Empty(t, contact)
		mockClient.AssertExpectations(t)
	})

	t.Run("contact without phone number", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := directory.NewClient(cfg, mockClient)

		body := `{"user_id": 42, "user_type": "couple", "full_name": "Saron Bekele", "phone": ""}`
		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Get", context.Background(), contactURL, headers).Return(resp, nil)

		contact, err := client.GetContact(context.Background(), 42, "couple")

		assert.Error(t, err)
		assert.Equal(t, directory.ErrNoPhoneNumber, err)
		assert.Empty(t, contact)
		mockClient.AssertExpectations(t)
	})

	t.Run("timeout error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := directory.NewClient(cfg, mockClient)

		mockClient.On("Get", context.Background(), contactURL, headers).
			Return((*http.Response)(nil), context.DeadlineExceeded)

		contact, err := client.GetContact(context.Background(), 42, "couple")

		assert.Error(t, err)
		assert.Equal(t, directory.ErrTimeout, err)
		assert.Empty(t, contact)
		mockClient.AssertExpectations(t)
	})

	t.Run("server error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := directory.NewClient(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 500,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Get", context.Background(), contactURL, headers).Return(resp, nil)

		contact, err := client.GetContact(context.Background(), 42, "couple")

		assert.Error(t, err)
		assert.Equal(t, directory.ErrServerError, err)
		assert.Empty(t, contact)
		mockClient.AssertExpectations(t)
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		client := directory.NewClient(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"user_id":`)),
		}

		mockClient.On("Get", context.Background(), contactURL, headers).Return(resp, nil)

		contact, err := client.GetContact(context.Background(), 42, "couple")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decoding error")
		assert.Empty(t, contact)
		mockClient.AssertExpectations(t)
	})
}
