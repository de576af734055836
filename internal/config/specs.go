// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	MongoURI      string        `envconfig:"mongo_uri" required:"true"`
	MongoDatabase string        `envconfig:"mongo_database" default:"stockwise"`
	MongoTimeout  time.Duration `envconfig:"mongo_timeout" default:"10s"`

	FirebaseProjectID       string `envconfig:"firebase_project_id" required:"true"`
	FirebaseCredentialsJSON string `envconfig:"firebase_credentials_json" required:"true"`
	FirebaseJWKSURL         string `envconfig:"firebase_jwks_url"`
	AuthDisabled            bool   `envconfig:"auth_disabled" default:"false"`

	CloudinaryURL        string `envconfig:"cloudinary_url" required:"true"`
	UploadMaxSizeMB      int64  `envconfig:"upload_max_size_mb" default:"15"`
	UploadUserFolder     string `envconfig:"upload_user_folder" default:"stockwise/users/rwanda"`
	UploadBusinessFolder string `envconfig:"upload_business_folder" default:"stockwise/businesses/rwanda"`

	AppName           string `envconfig:"app_name" default:"StockWise"`
	GmailClientID     string `envconfig:"gmail_client_id" required:"true"`
	GmailClientSecret string `envconfig:"gmail_client_secret" required:"true"`
	GmailRefreshToken string `envconfig:"gmail_refresh_token" required:"true"`
	GmailSenderEmail  string `envconfig:"gmail_sender_email" required:"true"`
	LoginURL          string `envconfig:"login_url" default:"https://stockwise.rw/login"`

	FollowupAttempts uint          `envconfig:"followup_attempts" default:"5"`
	FollowupDelay    time.Duration `envconfig:"followup_delay" default:"2s"`
}
