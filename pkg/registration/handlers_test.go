// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/stockwise/registry-service/internal/cloudinary"
)

func validFormFields() map[string]string {
	return map[string]string{
		"first_name":    "Jane",
		"last_name":     "Mukamana",
		"email":         "jane@example.com",
		"password":      "secret123",
		"phone":         "+250788123456",
		"gender":        "female",
		"business_name": "Kigali Traders",
		"district":      "Gasabo",
		"sector":        "Remera",
		"cell":          "Nyabisindu",
		"village":       "Amajyambere",
	}
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	for field, data := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="photo.png"`, field))
		h.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return body, writer.FormDataContentType()
}

func TestAPI_Register(t *testing.T) {
	missingEmail := validFormFields()
	delete(missingEmail, "email")

	testCases := []struct {
		name               string
		fields             map[string]string
		files              map[string][]byte
		setupMocks         func(*MockServiceInterface)
		expectedStatusCode int
		expectedSuccess    bool
	}{
		{
			name:   "created",
			fields: validFormFields(),
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&Result{
					UserID:       "uid-1",
					BusinessID:   "biz-1",
					TrialExpires: "September 30, 2026",
				}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedSuccess:    true,
		},
		{
			name:   "created with photo parts",
			fields: validFormFields(),
			files:  map[string][]byte{"user_photo": []byte("png-bytes")},
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req *Request) (*Result, error) {
						if req.UserPhoto == nil || string(req.UserPhoto.Data) != "png-bytes" {
							t.Errorf("expected user photo bytes forwarded, got %+v", req.UserPhoto)
						}
						if req.UserPhoto.ContentType != "image/png" {
							t.Errorf("expected part content type forwarded, got %q", req.UserPhoto.ContentType)
						}
						if req.BusinessPhoto != nil {
							t.Errorf("expected absent business photo, got %+v", req.BusinessPhoto)
						}
						return &Result{UserID: "uid-1", BusinessID: "biz-1"}, nil
					},
				)
			},
			expectedStatusCode: http.StatusCreated,
			expectedSuccess:    true,
		},
		{
			name:               "validation failure",
			fields:             missingEmail,
			setupMocks:         func(s *MockServiceInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:   "business name conflict",
			fields: validFormFields(),
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, ErrBusinessNameTaken)
			},
			expectedStatusCode: http.StatusConflict,
		},
		{
			name:   "email conflict",
			fields: validFormFields(),
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, ErrEmailTaken)
			},
			expectedStatusCode: http.StatusConflict,
		},
		{
			name:   "rejected upload",
			fields: validFormFields(),
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, cloudinary.ErrFileTooLarge)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:   "internal failure",
			fields: validFormFields(),
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("mongo down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "registration.API.register").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

			tc.setupMocks(mockService)

			api := NewAPI(mockService, mockTracer, mockMonitor, mockLogger)
			mux := chi.NewMux()
			api.RegisterEndpoints(mux)

			body, contentType := multipartBody(t, tc.fields, tc.files)
			req := httptest.NewRequest(http.MethodPost, "/api/v0/register", body)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatusCode, rr.Code, rr.Body.String())
			}

			var resp registerResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if resp.Success != tc.expectedSuccess {
				t.Errorf("expected success=%v, got %v", tc.expectedSuccess, resp.Success)
			}
			if tc.expectedSuccess && resp.UserRole != "admin" {
				t.Errorf("expected admin role in response, got %q", resp.UserRole)
			}
		})
	}
}

func TestAPI_Register_RejectsNonMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracer := NewMockTracingInterface(ctrl)
	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), "registration.API.register").Return(ctx, trace.SpanFromContext(ctx))

	api := NewAPI(NewMockServiceInterface(ctrl), mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/v0/register", bytes.NewBufferString(`{"email":"jane@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}
