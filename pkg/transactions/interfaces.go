// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package transactions

import (
	"context"

	"github.com/stockwise/registry-service/internal/types"
)

// StorageInterface is the subset of the storage interface transaction
// recording needs.
type StorageInterface interface {
	InsertTransaction(ctx context.Context, t *types.Transaction) (string, error)
	ListTransactionsByBusinessID(ctx context.Context, businessID string) ([]*types.Transaction, error)
}

type ServiceInterface interface {
	RecordTransaction(ctx context.Context, t *types.Transaction) (*types.Transaction, error)
	ListTransactions(ctx context.Context, businessID string) ([]*types.Transaction, error)
}
