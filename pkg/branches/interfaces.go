// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package branches

import (
	"context"

	"github.com/stockwise/registry-service/internal/types"
)

// StorageInterface is the subset of the storage interface branch management
// needs.
type StorageInterface interface {
	CreateBranch(ctx context.Context, b *types.Branch) (string, error)
	GetBranchByName(ctx context.Context, name string) (*types.Branch, error)
	GetBranchByID(ctx context.Context, id string) (*types.Branch, error)
	ListBranches(ctx context.Context) ([]*types.Branch, error)
	UpdateBranch(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteBranch(ctx context.Context, id string) error
}

type ServiceInterface interface {
	CreateBranch(ctx context.Context, b *types.Branch) (*types.Branch, error)
	GetBranch(ctx context.Context, id string) (*types.Branch, error)
	ListBranches(ctx context.Context) ([]*types.Branch, error)
	UpdateBranch(ctx context.Context, id string, fields map[string]interface{}) (*types.Branch, error)
	DeleteBranch(ctx context.Context, id string) error
}
