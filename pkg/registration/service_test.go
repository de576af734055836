// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/stockwise/registry-service/internal/avatar"
	"github.com/stockwise/registry-service/internal/cloudinary"
	"github.com/stockwise/registry-service/internal/outbox"
	"github.com/stockwise/registry-service/internal/storage"
	"github.com/stockwise/registry-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package registration -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package registration -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package registration -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package registration -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func validRequest() *Request {
	return &Request{
		FirstName:    "Jane",
		LastName:     "Mukamana",
		Email:        " Jane@Example.COM ",
		Password:     "secret123",
		Phone:        "+250788123456",
		Gender:       "female",
		BusinessName: "  Kigali Traders  ",
		District:     "Gasabo",
		Sector:       "Remera",
		Cell:         "Nyabisindu",
		Village:      "Amajyambere",
	}
}

type serviceMocks struct {
	storage  *MockStorageInterface
	provider *MockProviderInterface
	uploader *MockUploaderInterface
	mirror   *MockMirrorInterface
	mailer   *MockMailerInterface
	outbox   *MockOutboxInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		provider: NewMockProviderInterface(ctrl),
		uploader: NewMockUploaderInterface(ctrl),
		mirror:   NewMockMirrorInterface(ctrl),
		mailer:   NewMockMailerInterface(ctrl),
		outbox:   NewMockOutboxInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), "registration.Service.Register").Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	config := Config{
		UserPhotoFolder:     "stockwise/users/rwanda",
		BusinessPhotoFolder: "stockwise/businesses/rwanda",
		AppName:             "StockWise",
		LoginURL:            "https://stockwise.rw/login",
	}

	s := NewService(m.storage, m.provider, m.uploader, m.mirror, m.mailer, m.outbox, config, mockTracer, mockMonitor, mockLogger)
	return s, m
}

func TestService_Register_Conflicts(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "business name taken",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetBusinessByName(gomock.Any(), "Kigali Traders").Return(&types.Business{Name: "kigali traders"}, nil)
			},
			expectedErr: ErrBusinessNameTaken,
		},
		{
			name: "email taken",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetBusinessByName(gomock.Any(), "Kigali Traders").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetUserByEmailOrPhone(gomock.Any(), "jane@example.com", "+250788123456").Return(&types.User{Email: "jane@example.com"}, nil)
			},
			expectedErr: ErrEmailTaken,
		},
		{
			name: "phone taken reported only when email differs",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetBusinessByName(gomock.Any(), "Kigali Traders").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().GetUserByEmailOrPhone(gomock.Any(), "jane@example.com", "+250788123456").Return(&types.User{Email: "other@example.com", Phone: "+250788123456"}, nil)
			},
			expectedErr: ErrPhoneTaken,
		},
		{
			name: "business name check failure",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetBusinessByName(gomock.Any(), "Kigali Traders").Return(nil, errors.New("connection reset"))
			},
			expectedErr: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No InsertBusiness, InsertUser, CreateAccount, Upload or Submit
			// expectations: any write attempted on a conflict fails the test.
			s, m := newTestService(ctrl)
			tc.setupMocks(m)

			result, err := s.Register(context.Background(), validRequest())

			if result != nil {
				t.Errorf("expected no result, got %+v", result)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
			if err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.storage.EXPECT().GetBusinessByName(gomock.Any(), "Kigali Traders").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetUserByEmailOrPhone(gomock.Any(), "jane@example.com", "+250788123456").Return(nil, storage.ErrNotFound)

	before := time.Now().UTC()
	var insertedBusiness *types.Business
	m.storage.EXPECT().InsertBusiness(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, b *types.Business) (string, error) {
			insertedBusiness = b
			return "biz-1", nil
		},
	)
	m.provider.EXPECT().CreateAccount(gomock.Any(), "jane@example.com", "secret123", "Jane Mukamana").Return("uid-1", nil)

	var insertedUser *types.User
	m.storage.EXPECT().InsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, u *types.User) error {
			insertedUser = u
			return nil
		},
	)

	// Two mirror writes and one welcome email go through the outbox.
	m.outbox.EXPECT().Submit(gomock.Any()).Times(3)

	result, err := s.Register(context.Background(), validRequest())
	after := time.Now().UTC()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.UserID != "uid-1" || result.BusinessID != "biz-1" {
		t.Errorf("unexpected ids in result: %+v", result)
	}

	if insertedBusiness.Name != "Kigali Traders" {
		t.Errorf("expected trimmed business name, got %q", insertedBusiness.Name)
	}
	if insertedBusiness.Plan != types.PlanFree || insertedBusiness.Duration != types.DurationMonth {
		t.Errorf("expected free monthly trial, got plan=%q duration=%q", insertedBusiness.Plan, insertedBusiness.Duration)
	}
	if !insertedBusiness.IsActive {
		t.Error("expected business active on creation")
	}

	wantEnd := insertedBusiness.StartDate.Add(30 * 24 * time.Hour)
	if !insertedBusiness.EndDate.Equal(wantEnd) {
		t.Errorf("expected trial end exactly 30 days after start, got %v", insertedBusiness.EndDate)
	}
	if insertedBusiness.StartDate.Before(before) || insertedBusiness.StartDate.After(after) {
		t.Errorf("trial start %v outside call window [%v, %v]", insertedBusiness.StartDate, before, after)
	}
	if result.TrialExpires != wantEnd.Format("January 02, 2006") {
		t.Errorf("unexpected trial expiry display %q", result.TrialExpires)
	}

	if insertedUser.ID != "uid-1" {
		t.Errorf("expected user keyed by provider uid, got %q", insertedUser.ID)
	}
	if insertedUser.Role != types.RoleAdmin {
		t.Errorf("expected first user to be admin, got %q", insertedUser.Role)
	}
	if insertedUser.Email != "jane@example.com" {
		t.Errorf("expected normalized email, got %q", insertedUser.Email)
	}
	if insertedUser.BusinessID != "biz-1" {
		t.Errorf("expected user bound to business, got %q", insertedUser.BusinessID)
	}

	if result.UserPhotoURL != avatar.UserURL("Jane", "Mukamana") {
		t.Errorf("unexpected user placeholder %q", result.UserPhotoURL)
	}
	if result.BusinessPhotoURL != avatar.BusinessURL("Kigali Traders") {
		t.Errorf("unexpected business placeholder %q", result.BusinessPhotoURL)
	}
}

func TestService_Register_WithPhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	req := validRequest()
	req.UserPhoto = &Image{Data: []byte("img-1"), ContentType: "image/png"}
	req.BusinessPhoto = &Image{Data: []byte("img-2"), ContentType: "image/jpeg"}

	m.storage.EXPECT().GetBusinessByName(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetUserByEmailOrPhone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)

	m.uploader.EXPECT().Upload(gomock.Any(), []byte("img-1"), "image/png", "stockwise/users/rwanda", "jane").Return("https://cdn/user.png", nil)
	m.uploader.EXPECT().Upload(gomock.Any(), []byte("img-2"), "image/jpeg", "stockwise/businesses/rwanda", "kigali_traders").Return("https://cdn/biz.png", nil)

	m.storage.EXPECT().InsertBusiness(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, b *types.Business) (string, error) {
			if b.Photo != "https://cdn/biz.png" {
				t.Errorf("expected uploaded business photo on record, got %q", b.Photo)
			}
			return "biz-1", nil
		},
	)
	m.provider.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("uid-1", nil)
	m.storage.EXPECT().InsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, u *types.User) error {
			if u.Photo != "https://cdn/user.png" {
				t.Errorf("expected uploaded user photo on record, got %q", u.Photo)
			}
			return nil
		},
	)
	m.outbox.EXPECT().Submit(gomock.Any()).Times(3)

	result, err := s.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UserPhotoURL != "https://cdn/user.png" || result.BusinessPhotoURL != "https://cdn/biz.png" {
		t.Errorf("unexpected photo urls in result: %+v", result)
	}
}

func TestService_Register_UploadFailureAbortsBeforePersistence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	req := validRequest()
	req.UserPhoto = &Image{Data: []byte{0x1}, ContentType: "application/pdf"}

	m.storage.EXPECT().GetBusinessByName(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetUserByEmailOrPhone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	m.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", cloudinary.ErrInvalidFileType)

	_, err := s.Register(context.Background(), req)
	if !errors.Is(err, cloudinary.ErrInvalidFileType) {
		t.Errorf("expected upload error surfaced, got %v", err)
	}
}

func TestService_Register_ProviderFailureIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.storage.EXPECT().GetBusinessByName(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetUserByEmailOrPhone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().InsertBusiness(gomock.Any(), gomock.Any()).Return("biz-1", nil)
	// Only the business mirror task goes out before the failure.
	m.outbox.EXPECT().Submit(gomock.Any()).Times(1)
	m.provider.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", fmt.Errorf("quota exceeded"))

	_, err := s.Register(context.Background(), validRequest())
	if !errors.Is(err, ErrProviderFailed) {
		t.Errorf("expected ErrProviderFailed, got %v", err)
	}
}

func TestService_Register_LostInsertRaceMapsToConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.storage.EXPECT().GetBusinessByName(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetUserByEmailOrPhone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().InsertBusiness(gomock.Any(), gomock.Any()).Return("", storage.ErrDuplicateKey)

	_, err := s.Register(context.Background(), validRequest())
	if !errors.Is(err, ErrBusinessNameTaken) {
		t.Errorf("expected ErrBusinessNameTaken on duplicate key, got %v", err)
	}
}

func TestService_Register_MirrorTasksCarryMirrorFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.storage.EXPECT().GetBusinessByName(gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().GetUserByEmailOrPhone(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().InsertBusiness(gomock.Any(), gomock.Any()).Return("biz-1", nil)
	m.provider.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("uid-1", nil)
	m.storage.EXPECT().InsertUser(gomock.Any(), gomock.Any()).Return(nil)

	var tasks []outbox.Task
	m.outbox.EXPECT().Submit(gomock.Any()).Times(3).Do(func(task outbox.Task) {
		tasks = append(tasks, task)
	})

	if _, err := s.Register(context.Background(), validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.mirror.EXPECT().SetDocument(gomock.Any(), "businesses", "biz-1", gomock.Any()).Return(nil)
	m.mirror.EXPECT().SetDocument(gomock.Any(), "users", "uid-1", gomock.Any()).Return(nil)
	m.mailer.EXPECT().Send(gomock.Any(), "jane@example.com", gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, to, subject, body string) (string, error) {
			if !strings.Contains(body, "Kigali Traders") {
				t.Errorf("welcome email body missing business name")
			}
			return "msg-1", nil
		},
	)

	for _, task := range tasks {
		if err := task.Run(context.Background()); err != nil {
			t.Errorf("task %s failed: %v", task.Name, err)
		}
	}
}
