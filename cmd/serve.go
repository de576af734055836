// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/stockwise/registry-service/internal/cloudinary"
	"github.com/stockwise/registry-service/internal/config"
	"github.com/stockwise/registry-service/internal/db"
	"github.com/stockwise/registry-service/internal/firebase"
	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/mail"
	"github.com/stockwise/registry-service/internal/mirror"
	"github.com/stockwise/registry-service/internal/monitoring/prometheus"
	"github.com/stockwise/registry-service/internal/outbox"
	"github.com/stockwise/registry-service/internal/storage"
	"github.com/stockwise/registry-service/internal/tracing"
	"github.com/stockwise/registry-service/pkg/authentication"
	"github.com/stockwise/registry-service/pkg/branches"
	"github.com/stockwise/registry-service/pkg/metrics"
	"github.com/stockwise/registry-service/pkg/registration"
	"github.com/stockwise/registry-service/pkg/status"
	"github.com/stockwise/registry-service/pkg/transactions"
	"github.com/stockwise/registry-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("registry-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	dbConfig := db.Config{
		URI:      specs.MongoURI,
		Database: specs.MongoDatabase,
		Timeout:  specs.MongoTimeout,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close(context.Background())

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	if err := s.EnsureIndexes(startupCtx); err != nil {
		return fmt.Errorf("failed to ensure indexes: %v", err)
	}

	firebaseClient, err := firebase.NewClient(startupCtx, specs.FirebaseProjectID, specs.FirebaseCredentialsJSON, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create identity provider client: %v", err)
	}

	mirrorClient, err := mirror.NewClient(startupCtx, specs.FirebaseProjectID, specs.FirebaseCredentialsJSON, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create mirror client: %v", err)
	}
	defer mirrorClient.Close()

	uploader, err := cloudinary.NewUploader(specs.CloudinaryURL, specs.UploadMaxSizeMB, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create uploader: %v", err)
	}

	mailer := mail.NewClient(mail.Config{
		AppName:      specs.AppName,
		ClientID:     specs.GmailClientID,
		ClientSecret: specs.GmailClientSecret,
		RefreshToken: specs.GmailRefreshToken,
		SenderEmail:  specs.GmailSenderEmail,
	}, tracer, monitor, logger)

	followups := outbox.NewOutbox(specs.FollowupAttempts, specs.FollowupDelay, tracer, monitor, logger)

	var verifier authentication.TokenVerifierInterface
	switch {
	case specs.AuthDisabled:
		logger.Warn("authentication is disabled, tokens are trusted as subject ids")
		verifier = authentication.NewNoopVerifier()
	case specs.FirebaseJWKSURL != "":
		// Manual key set for issuers without a discovery document, such as
		// the Firebase Auth emulator.
		v, err := authentication.NewProviderWithJWKS(startupCtx, authentication.SecureTokenIssuer(specs.FirebaseProjectID), specs.FirebaseJWKSURL, specs.FirebaseProjectID)
		if err != nil {
			return fmt.Errorf("failed to create token verifier from key set: %v", err)
		}
		verifier = authentication.NewIDTokenVerifierDirect(v, tracer, monitor, logger)
	default:
		provider, err := authentication.NewProvider(startupCtx, authentication.SecureTokenIssuer(specs.FirebaseProjectID))
		if err != nil {
			return fmt.Errorf("failed to create token provider: %v", err)
		}
		verifier = authentication.NewIDTokenVerifier(provider, specs.FirebaseProjectID, tracer, monitor, logger)
	}
	authMiddleware := authentication.NewMiddleware(verifier, s, tracer, monitor, logger)

	registrationService := registration.NewService(
		s,
		firebaseClient,
		uploader,
		mirrorClient,
		mailer,
		followups,
		registration.Config{
			UserPhotoFolder:     specs.UploadUserFolder,
			BusinessPhotoFolder: specs.UploadBusinessFolder,
			AppName:             specs.AppName,
			LoginURL:            specs.LoginURL,
		},
		tracer,
		monitor,
		logger,
	)
	branchesService := branches.NewService(s, tracer, monitor, logger)
	transactionsService := transactions.NewService(s, tracer, monitor, logger)

	router := web.NewRouter(
		registration.NewAPI(registrationService, tracer, monitor, logger),
		branches.NewAPI(branchesService, authMiddleware.Protect(), tracer, monitor, logger),
		transactions.NewAPI(transactionsService, authMiddleware.Protect(), tracer, monitor, logger),
		status.NewAPI(dbClient, tracer, monitor, logger),
		metrics.NewAPI(logger),
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	// Committed follow-ups still in flight get the rest of the deadline.
	if err := followups.Drain(ctx); err != nil {
		logger.Errorf("shutdown with follow-ups still in flight: %v", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
