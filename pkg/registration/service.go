// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stockwise/registry-service/internal/avatar"
	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/outbox"
	"github.com/stockwise/registry-service/internal/storage"
	"github.com/stockwise/registry-service/internal/tracing"
	"github.com/stockwise/registry-service/internal/types"
)

// New tenants always start on the fixed 30-day free trial, regardless of any
// plan value elsewhere in the system.
const trialDays = 30

const expiryDisplayFormat = "January 02, 2006"

// Conflict errors detected before any mutation.
var (
	ErrBusinessNameTaken = errors.New("business name already exists")
	ErrEmailTaken        = errors.New("email already in use")
	ErrPhoneTaken        = errors.New("phone number already in use")
)

// ErrProviderFailed marks a terminal identity-provider failure. The business
// record is already committed when this happens; see the package doc on the
// accepted inconsistency window.
var ErrProviderFailed = errors.New("failed to create provider account")

// Image is an optional uploaded photo payload.
type Image struct {
	Data        []byte
	ContentType string
}

type Request struct {
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	Email        string `validate:"required,email"`
	Password     string `validate:"required,min=6"`
	Phone        string `validate:"required,e164"`
	Gender       string `validate:"required,oneof=male female other"`
	BusinessName string `validate:"required"`
	District     string `validate:"required"`
	Sector       string `validate:"required"`
	Cell         string `validate:"required"`
	Village      string `validate:"required"`

	UserPhoto     *Image
	BusinessPhoto *Image
}

type Result struct {
	UserID           string
	BusinessID       string
	TrialExpires     string
	UserPhotoURL     string
	BusinessPhotoURL string
}

type Config struct {
	UserPhotoFolder     string
	BusinessPhotoFolder string
	AppName             string
	LoginURL            string
}

type Service struct {
	storage  StorageInterface
	provider ProviderInterface
	uploader UploaderInterface
	mirror   MirrorInterface
	mailer   MailerInterface
	outbox   OutboxInterface
	config   Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	provider ProviderInterface,
	uploader UploaderInterface,
	mirror MirrorInterface,
	mailer MailerInterface,
	outbox OutboxInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		provider: provider,
		uploader: uploader,
		mirror:   mirror,
		mailer:   mailer,
		outbox:   outbox,
		config:   config,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// Register creates a business and its first admin user. Checks run strictly
// before any mutation; once the business record is committed, mirror writes
// and the welcome email become best-effort follow-ups and provider-account
// failure leaves the committed records in place.
func (s *Service) Register(ctx context.Context, req *Request) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "registration.Service.Register")
	defer span.End()

	// 1. Normalize inputs.
	businessName := strings.TrimSpace(req.BusinessName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	fullName := firstName + " " + lastName

	// 2. Business name must be unique, case-insensitively.
	if _, err := s.storage.GetBusinessByName(ctx, businessName); err == nil {
		s.logger.Warnf("duplicate business name: %s", businessName)
		return nil, ErrBusinessNameTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check business name: %w", err)
	}

	// 3. Email and phone must be unique across users; email is reported first.
	existing, err := s.storage.GetUserByEmailOrPhone(ctx, email, phone)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email and phone: %w", err)
	}
	if existing != nil {
		if existing.Email == email {
			return nil, ErrEmailTaken
		}
		return nil, ErrPhoneTaken
	}

	// 4. Resolve photo URLs. Each upload is independent; any upload failure
	// aborts the registration before persistence begins.
	userPhotoURL := avatar.UserURL(firstName, lastName)
	businessPhotoURL := avatar.BusinessURL(businessName)

	if req.UserPhoto != nil {
		prefix, _, _ := strings.Cut(email, "@")
		userPhotoURL, err = s.uploader.Upload(ctx, req.UserPhoto.Data, req.UserPhoto.ContentType, s.config.UserPhotoFolder, prefix)
		if err != nil {
			return nil, err
		}
	}

	if req.BusinessPhoto != nil {
		prefix := strings.ToLower(strings.ReplaceAll(businessName, " ", "_"))
		businessPhotoURL, err = s.uploader.Upload(ctx, req.BusinessPhoto.Data, req.BusinessPhoto.ContentType, s.config.BusinessPhotoFolder, prefix)
		if err != nil {
			return nil, err
		}
	}

	// 5. Fixed 30-day trial window.
	start := time.Now().UTC()
	end := start.Add(trialDays * 24 * time.Hour)

	business := &types.Business{
		Name:      businessName,
		District:  strings.TrimSpace(req.District),
		Sector:    strings.TrimSpace(req.Sector),
		Cell:      strings.TrimSpace(req.Cell),
		Village:   strings.TrimSpace(req.Village),
		Plan:      types.PlanFree,
		Duration:  types.DurationMonth,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
		Photo:     businessPhotoURL,
		CreatedAt: start,
		UpdatedAt: start,
	}

	// 6. Persist the business.
	businessID, err := s.storage.InsertBusiness(ctx, business)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			// Lost the race with a concurrent registration; the unique
			// index is authoritative.
			return nil, ErrBusinessNameTaken
		}
		return nil, fmt.Errorf("failed to persist business: %w", err)
	}

	// 7. Mirror the business, best-effort.
	s.submitMirror("mirror-business", "businesses", businessID, businessDoc(business))

	// 8. Create the provider account. Terminal on failure; steps 6-7 stay
	// committed.
	uid, err := s.provider.CreateAccount(ctx, email, req.Password, fullName)
	if err != nil {
		s.logger.Errorf("provider account creation failed for %s: %v", email, err)
		return nil, ErrProviderFailed
	}

	// 9-10. Persist the admin user keyed by the provider account id.
	user := &types.User{
		ID:         uid,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      phone,
		Gender:     strings.TrimSpace(req.Gender),
		Role:       types.RoleAdmin,
		BusinessID: businessID,
		IsActive:   true,
		Photo:      userPhotoURL,
		CreatedAt:  start,
		UpdatedAt:  start,
	}

	if err := s.storage.InsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	// 11. Mirror the user, best-effort.
	s.submitMirror("mirror-user", "users", uid, userDoc(user))

	// 12. Welcome email, best-effort.
	expiryDisplay := end.Format(expiryDisplayFormat)
	to := email
	subject := fmt.Sprintf("Welcome to %s! Free Trial Active", s.config.AppName)
	body := welcomeEmail(s.config.AppName, s.config.LoginURL, fullName, businessName, expiryDisplay)
	s.outbox.Submit(outbox.Task{
		Name: "welcome-email",
		Run: func(ctx context.Context) error {
			_, err := s.mailer.Send(ctx, to, subject, body)
			return err
		},
	})

	s.logger.Infof("registration successful: %s | business: %s", email, businessName)

	return &Result{
		UserID:           uid,
		BusinessID:       businessID,
		TrialExpires:     expiryDisplay,
		UserPhotoURL:     userPhotoURL,
		BusinessPhotoURL: businessPhotoURL,
	}, nil
}

func (s *Service) submitMirror(name, collection, id string, fields map[string]interface{}) {
	s.outbox.Submit(outbox.Task{
		Name: name,
		Run: func(ctx context.Context) error {
			return s.mirror.SetDocument(ctx, collection, id, fields)
		},
	})
}

func businessDoc(b *types.Business) map[string]interface{} {
	return map[string]interface{}{
		"name":       b.Name,
		"district":   b.District,
		"sector":     b.Sector,
		"cell":       b.Cell,
		"village":    b.Village,
		"plan":       b.Plan,
		"duration":   b.Duration,
		"start_date": b.StartDate,
		"end_date":   b.EndDate,
		"is_active":  b.IsActive,
		"photo":      b.Photo,
		"created_at": b.CreatedAt,
		"updated_at": b.UpdatedAt,
	}
}

func userDoc(u *types.User) map[string]interface{} {
	return map[string]interface{}{
		"first_name":  u.FirstName,
		"last_name":   u.LastName,
		"email":       u.Email,
		"phone":       u.Phone,
		"gender":      u.Gender,
		"role":        u.Role,
		"business_id": u.BusinessID,
		"is_active":   u.IsActive,
		"photo":       u.Photo,
		"created_at":  u.CreatedAt,
		"updated_at":  u.UpdatedAt,
	}
}

func welcomeEmail(appName, loginURL, fullName, businessName, expiryDisplay string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
		<h2 style="color: #007bff;">Welcome to %s, %s!</h2>
		<p>Your business <strong>%s</strong> has been successfully registered.</p>
		<p><strong>Free Trial:</strong> 1 Month | Expires: <strong>%s</strong></p>
		<div style="text-align: center; margin: 25px 0;">
			<a href="%s" style="background:#28a745;color:#fff;padding:12px 25px;text-decoration:none;border-radius:5px;font-weight:bold;">
				Log In Now
			</a>
		</div>
		<p style="font-size:14px;color:#6c757d;">Contact support if needed.</p>
	</div>`, appName, fullName, businessName, expiryDisplay, loginURL)
}
