// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package mirror keeps a subset of primary-store records eventually
// consistent in Firestore. Writes are best-effort: callers dispatch them as
// committed follow-ups and never roll back the primary store on failure.
package mirror

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
)

type ClientInterface interface {
	SetDocument(ctx context.Context, collection, id string, fields map[string]interface{}) error
}

var _ ClientInterface = (*Client)(nil)

type Client struct {
	client *firestore.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(ctx context.Context, projectID, credentialsJSON string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	client, err := firestore.NewClient(ctx, projectID, option.WithCredentialsJSON([]byte(credentialsJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}

	return &Client{
		client:  client,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func (c *Client) SetDocument(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	ctx, span := c.tracer.Start(ctx, "mirror.SetDocument")
	defer span.End()

	if _, err := c.client.Collection(collection).Doc(id).Set(ctx, fields); err != nil {
		return fmt.Errorf("failed to mirror document %s/%s: %w", collection, id, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
