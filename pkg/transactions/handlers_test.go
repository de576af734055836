// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package transactions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/stockwise/registry-service/internal/types"
)

func passthrough(next http.Handler) http.Handler {
	return next
}

func newTestAPI(t *testing.T, ctrl *gomock.Controller, spanName string) (*chi.Mux, *MockServiceInterface) {
	t.Helper()

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), spanName).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	api := NewAPI(mockService, passthrough, mockTracer, mockMonitor, mockLogger)
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return mux, mockService
}

func TestAPI_Record(t *testing.T) {
	txID := primitive.NewObjectID()

	testCases := []struct {
		name               string
		body               string
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
	}{
		{
			name: "created",
			body: `{"business_id":"biz-1","payer_phone":"+250788123456","amount":15000,"plan":"standard"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().RecordTransaction(gomock.Any(), gomock.Any()).Return(&types.Transaction{
					ID: txID, BusinessID: "biz-1", Amount: 15000, Plan: "standard",
				}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "negative amount",
			body:               `{"business_id":"biz-1","payer_phone":"+250788123456","amount":-5,"plan":"standard"}`,
			setupMocks:         func(s *MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "unknown plan",
			body:               `{"business_id":"biz-1","payer_phone":"+250788123456","amount":15000,"plan":"platinum"}`,
			setupMocks:         func(s *MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "malformed phone",
			body:               `{"business_id":"biz-1","payer_phone":"0788123456","amount":15000,"plan":"standard"}`,
			setupMocks:         func(s *MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "malformed date",
			body:               `{"business_id":"biz-1","payer_phone":"+250788123456","amount":15000,"plan":"standard","date":"yesterday"}`,
			setupMocks:         func(s *MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mux, mockService := newTestAPI(t, ctrl, "transactions.API.record")
			tc.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/transactions/", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatusCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mux, mockService := newTestAPI(t, ctrl, "transactions.API.list")
	mockService.EXPECT().ListTransactions(gomock.Any(), "biz-1").Return([]*types.Transaction{
		{ID: primitive.NewObjectID(), BusinessID: "biz-1", Amount: 15000},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/transactions/biz-1", nil)
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp []transactionResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 1 || resp[0].BusinessID != "biz-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}
