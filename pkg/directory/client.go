package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/NahoooMac/wedhabesha-sub007/pkg/httpclient"
)

const ContactsEndpoint = "/internal/v1/contacts"

// Contact is the profile slice the escalation worker needs: who to text
// and how to address them.
type Contact struct {
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type Client interface {
	GetContact(ctx context.Context, userID int64, userType string) (Contact, error)
}

type client struct {
	config Config
	http   httpclient.HTTPClient
}

func NewClient(cfg Config, httpClient httpclient.HTTPClient) Client {
	return &client{config: cfg, http: httpClient}
}

func (c *client) GetContact(ctx context.Context, userID int64, userType string) (Contact, error) {
	url := fmt.Sprintf("%s%s/%s/%d", c.config.BaseURL, ContactsEndpoint, userType, userID)

	headers := map[string]string{
		"Accept":    "application/json",
		"X-API-Key": c.config.APIKey,
	}

	resp, err := c.http.Get(ctx, url, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Contact{}, ErrTimeout
		}

		return Contact{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return Contact{}, MapStatusToError(resp.StatusCode)
	}

	var contact Contact
	if err := json.NewDecoder(resp.Body).Decode(&contact); err != nil {
		return Contact{}, fmt.Errorf("decoding error: %w", err)
	}

	if contact.Phone == "" {
		return Contact{}, ErrNoPhoneNumber
	}

	return contact, nil
}
