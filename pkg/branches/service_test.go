// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package branches

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/stockwise/registry-service/internal/storage"
	"github.com/stockwise/registry-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package branches -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package branches -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package branches -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package branches -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func newTestService(t *testing.T, ctrl *gomock.Controller, spanName string) (*Service, *MockStorageInterface) {
	t.Helper()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), spanName).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

	return NewService(mockStorage, mockTracer, mockMonitor, mockLogger), mockStorage
}

func TestService_CreateBranch(t *testing.T) {
	branchID := primitive.NewObjectID()
	created := &types.Branch{ID: branchID, Name: "Remera", District: "Gasabo"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetBranchByName(gomock.Any(), "Remera").Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CreateBranch(gomock.Any(), gomock.Any()).Return(branchID.Hex(), nil)
				mockStorage.EXPECT().GetBranchByID(gomock.Any(), branchID.Hex()).Return(created, nil)
			},
		},
		{
			name: "duplicate name",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetBranchByName(gomock.Any(), "Remera").Return(created, nil)
			},
			expectedErr: ErrBranchExists,
		},
		{
			name: "duplicate key on insert race",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetBranchByName(gomock.Any(), "Remera").Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CreateBranch(gomock.Any(), gomock.Any()).Return("", storage.ErrDuplicateKey)
			},
			expectedErr: ErrBranchExists,
		},
		{
			name: "storage error on check",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetBranchByName(gomock.Any(), "Remera").Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(t, ctrl, "branches.Service.CreateBranch")
			tc.setupMocks(mockStorage)

			branch, err := s.CreateBranch(context.Background(), &types.Branch{Name: " Remera ", District: "Gasabo"})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if branch.ID != branchID {
				t.Errorf("expected branch %s, got %s", branchID.Hex(), branch.ID.Hex())
			}
		})
	}
}

func TestService_UpdateBranch(t *testing.T) {
	branchID := primitive.NewObjectID()
	updated := &types.Branch{ID: branchID, Name: "Kicukiro"}

	testCases := []struct {
		name        string
		fields      map[string]interface{}
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:   "success",
			fields: map[string]interface{}{"name": "Kicukiro"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateBranch(gomock.Any(), branchID.Hex(), map[string]interface{}{"name": "Kicukiro"}).Return(nil)
				mockStorage.EXPECT().GetBranchByID(gomock.Any(), branchID.Hex()).Return(updated, nil)
			},
		},
		{
			name:        "empty field set rejected before any store call",
			fields:      map[string]interface{}{},
			setupMocks:  func(mockStorage *MockStorageInterface) {},
			expectedErr: ErrEmptyUpdate,
		},
		{
			name:        "unknown fields are dropped",
			fields:      map[string]interface{}{"_id": "x", "role": "admin"},
			setupMocks:  func(mockStorage *MockStorageInterface) {},
			expectedErr: ErrEmptyUpdate,
		},
		{
			name:   "absent id",
			fields: map[string]interface{}{"name": "Kicukiro"},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().UpdateBranch(gomock.Any(), branchID.Hex(), gomock.Any()).Return(storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(t, ctrl, "branches.Service.UpdateBranch")
			tc.setupMocks(mockStorage)

			branch, err := s.UpdateBranch(context.Background(), branchID.Hex(), tc.fields)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if branch.Name != "Kicukiro" {
				t.Errorf("expected updated branch, got %+v", branch)
			}
		})
	}
}

func TestService_DeleteBranch(t *testing.T) {
	branchID := primitive.NewObjectID().Hex()

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteBranch(gomock.Any(), branchID).Return(nil)
			},
		},
		{
			name: "absent id",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteBranch(gomock.Any(), branchID).Return(storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "malformed id",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().DeleteBranch(gomock.Any(), branchID).Return(storage.ErrInvalidID)
			},
			expectedErr: storage.ErrInvalidID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage := newTestService(t, ctrl, "branches.Service.DeleteBranch")
			tc.setupMocks(mockStorage)

			err := s.DeleteBranch(context.Background(), branchID)

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}
