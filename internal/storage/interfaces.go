// Copyright 2025 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/stockwise/registry-service/internal/types"
)

type StorageInterface interface {
	EnsureIndexes(ctx context.Context) error

	GetBusinessByName(ctx context.Context, name string) (*types.Business, error)
	InsertBusiness(ctx context.Context, b *types.Business) (string, error)

	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmailOrPhone(ctx context.Context, email, phone string) (*types.User, error)
	InsertUser(ctx context.Context, u *types.User) error

	CreateBranch(ctx context.Context, b *types.Branch) (string, error)
	GetBranchByName(ctx context.Context, name string) (*types.Branch, error)
	GetBranchByID(ctx context.Context, id string) (*types.Branch, error)
	ListBranches(ctx context.Context) ([]*types.Branch, error)
	UpdateBranch(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteBranch(ctx context.Context, id string) error

	InsertTransaction(ctx context.Context, t *types.Transaction) (string, error)
	ListTransactionsByBusinessID(ctx context.Context, businessID string) ([]*types.Transaction, error)
}
