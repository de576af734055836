// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
)

type ClientInterface interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
}

var _ ClientInterface = (*Client)(nil)

// Client wraps the Firebase Admin SDK for identity-provider account
// management. Token verification happens in pkg/authentication against the
// provider JWKS and does not go through this client.
type Client struct {
	auth *auth.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(ctx context.Context, projectID, credentialsJSON string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithCredentialsJSON([]byte(credentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &Client{
		auth:    authClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func (c *Client) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "firebase.CreateAccount")
	defer span.End()

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := c.auth.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create provider account: %w", err)
	}

	c.logger.Security().AccountCreated(user.UID)

	return user.UID, nil
}
