// Copyright 2025 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/storage"
	"github.com/stockwise/registry-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_interfaces.go -source=./interfaces.go

func TestMiddleware_Protect(t *testing.T) {
	branchID := primitive.NewObjectID()

	tests := []struct {
		name               string
		authHeader         string
		cookie             string
		setupMocks         func(*MockTokenVerifierInterface, *MockUserLoaderInterface)
		expectedStatusCode int
		expectPrincipal    *types.Principal
	}{
		{
			name: "no credential - rejects request",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserLoaderInterface) {
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "verification failure - rejects request",
			authHeader: "Bearer bad-token",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserLoaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "bad-token").Return("", fmt.Errorf("expired"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "verified but user record missing",
			authHeader: "Bearer good-token",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserLoaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "good-token").Return("uid-1", nil)
				u.EXPECT().GetUserByID(gomock.Any(), "uid-1").Return(nil, storage.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:       "storage failure",
			authHeader: "Bearer good-token",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserLoaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "good-token").Return("uid-1", nil)
				u.EXPECT().GetUserByID(gomock.Any(), "uid-1").Return(nil, fmt.Errorf("connection reset"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
		{
			name:       "inactive account",
			authHeader: "Bearer good-token",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserLoaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "good-token").Return("uid-1", nil)
				u.EXPECT().GetUserByID(gomock.Any(), "uid-1").Return(&types.User{
					ID: "uid-1", Role: types.RoleAdmin, IsActive: false,
				}, nil)
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:       "staff without branch",
			authHeader: "Bearer good-token",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserLoaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "good-token").Return("uid-2", nil)
				u.EXPECT().GetUserByID(gomock.Any(), "uid-2").Return(&types.User{
					ID: "uid-2", Role: types.RoleStaff, IsActive: true,
				}, nil)
			},
			expectedStatusCode: http.StatusForbidden,
		},
		{
			name:       "staff with branch passes",
			authHeader: "Bearer good-token",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserLoaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "good-token").Return("uid-2", nil)
				u.EXPECT().GetUserByID(gomock.Any(), "uid-2").Return(&types.User{
					ID: "uid-2", FirstName: "Alice", LastName: "Staff",
					Role: types.RoleStaff, IsActive: true, Branch: &branchID,
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectPrincipal: &types.Principal{
				ID: "uid-2", Role: types.RoleStaff, Username: "Alice Staff", Branch: branchID.Hex(),
			},
		},
		{
			name:   "admin via cookie passes",
			cookie: "cookie-token",
			setupMocks: func(v *MockTokenVerifierInterface, u *MockUserLoaderInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "cookie-token").Return("uid-3", nil)
				u.EXPECT().GetUserByID(gomock.Any(), "uid-3").Return(&types.User{
					ID: "uid-3", FirstName: "Bob", LastName: "Owner",
					Role: types.RoleAdmin, IsActive: true,
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectPrincipal: &types.Principal{
				ID: "uid-3", Role: types.RoleAdmin, Username: "Bob Owner",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			mockUsers := NewMockUserLoaderInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Protect").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security()).AnyTimes()

			tt.setupMocks(mockVerifier, mockUsers)

			middleware := NewMiddleware(mockVerifier, mockUsers, mockTracer, mockMonitor, mockLogger)

			var gotPrincipal *types.Principal
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPrincipal, _ = PrincipalFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			rr := httptest.NewRecorder()

			middleware.Protect()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectPrincipal != nil {
				if gotPrincipal == nil {
					t.Fatal("expected principal attached, got none")
				}
				if *gotPrincipal != *tt.expectPrincipal {
					t.Errorf("expected principal %+v, got %+v", tt.expectPrincipal, gotPrincipal)
				}
			}
		})
	}
}

func TestMiddleware_GetToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		cookie        string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "no credential",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "bearer header",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "raw header without bearer prefix falls through",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "cookie fallback",
			cookie:        "cookie-token",
			expectedToken: "cookie-token",
			expectedFound: true,
		},
		{
			name:          "header wins over cookie",
			authHeader:    "Bearer header-token",
			cookie:        "cookie-token",
			expectedToken: "header-token",
			expectedFound: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			middleware := NewMiddleware(
				NewMockTokenVerifierInterface(ctrl),
				NewMockUserLoaderInterface(ctrl),
				NewMockTracingInterface(ctrl),
				NewMockMonitorInterface(ctrl),
				NewMockLoggerInterface(ctrl),
			)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if test.authHeader != "" {
				req.Header.Set("Authorization", test.authHeader)
			}
			if test.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: test.cookie})
			}

			token, found := middleware.getToken(req)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}
