// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package transactions

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
	"github.com/stockwise/registry-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// RecordTransaction stores a payment intent. Records always start
// unconfirmed; confirmation belongs to an external settlement flow.
func (s *Service) RecordTransaction(ctx context.Context, t *types.Transaction) (*types.Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "transactions.Service.RecordTransaction")
	defer span.End()

	t.Confirm = false
	t.CreatedAt = time.Now().UTC()
	if t.Date.IsZero() {
		t.Date = t.CreatedAt
	}

	id, err := s.storage.InsertTransaction(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("store returned malformed id %q: %w", id, err)
	}
	t.ID = oid

	s.logger.Infof("transaction recorded: %s for business %s", id, t.BusinessID)
	return t, nil
}

func (s *Service) ListTransactions(ctx context.Context, businessID string) ([]*types.Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "transactions.Service.ListTransactions")
	defer span.End()

	return s.storage.ListTransactionsByBusinessID(ctx, businessID)
}
