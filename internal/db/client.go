// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
)

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type DBClientInterface interface {
	Database() *mongo.Database
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var _ DBClientInterface = (*DBClient)(nil)

type DBClient struct {
	client   *mongo.Client
	database *mongo.Database

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *DBClient) Database() *mongo.Database {
	return c.database
}

func (c *DBClient) Ping(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	return c.client.Ping(ctx, readpref.Primary())
}

func (c *DBClient) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

func NewDBClient(config Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &DBClient{
		client:   client,
		database: client.Database(config.Database),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}, nil
}
