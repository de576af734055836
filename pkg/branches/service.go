// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package branches

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/storage"
	"github.com/stockwise/registry-service/internal/tracing"
	"github.com/stockwise/registry-service/internal/types"
)

var (
	ErrBranchExists = errors.New("branch name already exists")
	ErrEmptyUpdate  = errors.New("no fields to update")
)

// Fields accepted in a partial branch update.
var updatableFields = map[string]bool{
	"name":     true,
	"district": true,
	"sector":   true,
	"cell":     true,
	"village":  true,
}

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

// CreateBranch rejects byte-for-byte duplicate names before inserting.
func (s *Service) CreateBranch(ctx context.Context, b *types.Branch) (*types.Branch, error) {
	ctx, span := s.tracer.Start(ctx, "branches.Service.CreateBranch")
	defer span.End()

	b.Name = strings.TrimSpace(b.Name)

	if _, err := s.storage.GetBranchByName(ctx, b.Name); err == nil {
		return nil, ErrBranchExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check branch name: %w", err)
	}

	id, err := s.storage.CreateBranch(ctx, b)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrBranchExists
		}
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	s.logger.Infof("branch created: %s (%s)", b.Name, id)

	return s.storage.GetBranchByID(ctx, id)
}

func (s *Service) GetBranch(ctx context.Context, id string) (*types.Branch, error) {
	ctx, span := s.tracer.Start(ctx, "branches.Service.GetBranch")
	defer span.End()

	return s.storage.GetBranchByID(ctx, id)
}

func (s *Service) ListBranches(ctx context.Context) ([]*types.Branch, error) {
	ctx, span := s.tracer.Start(ctx, "branches.Service.ListBranches")
	defer span.End()

	return s.storage.ListBranches(ctx)
}

// UpdateBranch applies a partial update. Unknown fields are dropped; an
// update that carries no usable field is rejected before any store call.
func (s *Service) UpdateBranch(ctx context.Context, id string, fields map[string]interface{}) (*types.Branch, error) {
	ctx, span := s.tracer.Start(ctx, "branches.Service.UpdateBranch")
	defer span.End()

	update := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if updatableFields[k] {
			update[k] = v
		}
	}
	if len(update) == 0 {
		return nil, ErrEmptyUpdate
	}

	if err := s.storage.UpdateBranch(ctx, id, update); err != nil {
		return nil, err
	}

	return s.storage.GetBranchByID(ctx, id)
}

func (s *Service) DeleteBranch(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "branches.Service.DeleteBranch")
	defer span.End()

	// Users referencing the branch are left orphaned on purpose; they fail
	// the staff-branch policy until reassigned.
	if err := s.storage.DeleteBranch(ctx, id); err != nil {
		return err
	}

	s.logger.Infof("branch deleted: %s", id)
	return nil
}
