// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package email

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// DefaultResendBaseURL is the production Resend API.
const DefaultResendBaseURL = "https://api.resend.com/"

// ResendConfig holds the API credentials.
type ResendConfig struct {
	APIKey  string
	BaseURL string
}

// ResendClient sends email and manages audience contacts through the
// Resend SDK.
type ResendClient struct {
	client *resend.Client
}

// NewResendClient returns nil when no API key is configured, so callers can
// detect the unconfigured state.
func NewResendClient(cfg ResendConfig) (*ResendClient, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultResendBaseURL
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("resend base url: %w", err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	client := resend.NewCustomClient(&http.Client{Timeout: 15 * time.Second}, cfg.APIKey)
	client.BaseURL = base
	return &ResendClient{client: client}, nil
}

// Send delivers m and returns the provider's message id.
func (c *ResendClient) Send(ctx context.Context, m Message) (string, error) {
	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.From,
		To:      m.To,
		Cc:      m.CC,
		ReplyTo: m.ReplyTo,
		Subject: m.Subject,
		Html:    m.HTML,
		Text:    m.Text,
	})
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	return resp.Id, nil
}

// CreateContact adds contact to the audience.
func (c *ResendClient) CreateContact(ctx context.Context, audienceID string, contact Contact) error {
	_, err := c.client.Contacts.CreateWithContext(ctx, &resend.CreateContactRequest{
		Email:      contact.Email,
		AudienceId: audienceID,
		FirstName:  contact.FirstName,
		LastName:   contact.LastName,
	})
	if err != nil {
		return fmt.Errorf("resend create contact: %w", err)
	}
	return nil
}
