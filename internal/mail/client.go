// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
)

const sendEndpoint = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

var ErrSendFailed = errors.New("failed to send email")

type Config struct {
	AppName      string
	ClientID     string
	ClientSecret string
	RefreshToken string
	SenderEmail  string
}

type MailerInterface interface {
	Send(ctx context.Context, to, subject, htmlBody string) (string, error)
}

var _ MailerInterface = (*Client)(nil)

// Client sends mail through the Gmail REST API. The OAuth2 token source
// handles access-token refresh from the configured refresh token.
type Client struct {
	config Config
	tokens oauth2.TokenSource
	http   *resty.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	oauthConfig := &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"https://www.googleapis.com/auth/gmail.send"},
	}

	tokens := oauthConfig.TokenSource(context.Background(), &oauth2.Token{RefreshToken: config.RefreshToken})

	return &Client{
		config:  config,
		tokens:  tokens,
		http:    resty.New(),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "mail.Send")
	defer span.End()

	if to == "" || subject == "" || htmlBody == "" {
		return "", fmt.Errorf("to, subject and body are required")
	}

	token, err := c.tokens.Token()
	if err != nil {
		c.logger.Errorf("failed to refresh mail transport token: %v", err)
		return "", ErrSendFailed
	}

	raw := encodeMessage(c.config.AppName, c.config.SenderEmail, to, subject, htmlBody)

	var result struct {
		ID string `json:"id"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetBody(map[string]string{"raw": raw}).
		SetResult(&result).
		Post(sendEndpoint)
	if err != nil {
		c.logger.Errorf("mail send to %s failed: %v", to, err)
		return "", ErrSendFailed
	}

	if resp.IsError() {
		c.logger.Errorf("mail send to %s failed with status %d: %s", to, resp.StatusCode(), resp.String())
		return "", ErrSendFailed
	}

	c.logger.Infof("email sent, message id %s", result.ID)

	return result.ID, nil
}

// encodeMessage builds an RFC 2822 message and encodes it the way the Gmail
// API expects: base64url without padding.
func encodeMessage(appName, from, to, subject, htmlBody string) string {
	message := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", appName, from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"Content-Type: text/html; charset=UTF-8",
		"MIME-Version: 1.0",
		"",
		htmlBody,
	}, "\n")

	return base64.RawURLEncoding.EncodeToString([]byte(message))
}
