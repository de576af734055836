// Copyright 2025 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
)

var _ TokenVerifierInterface = (*IDTokenVerifier)(nil)

// IDTokenVerifier verifies provider-issued ID tokens against the issuer's
// key set and extracts the subject.
type IDTokenVerifier struct {
	verifier *oidc.IDTokenVerifier

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *IDTokenVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.IDTokenVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	if token.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return token.Subject, nil
}

// NewIDTokenVerifier builds a verifier for the given provider project. The
// audience claim on provider tokens carries the project ID.
func NewIDTokenVerifier(
	provider ProviderInterface,
	projectID string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *IDTokenVerifier {
	v := &IDTokenVerifier{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	config := &oidc.Config{
		ClientID:        projectID,
		SkipIssuerCheck: false,
	}

	v.verifier = provider.Verifier(config)

	return v
}

func NewIDTokenVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *IDTokenVerifier {
	return &IDTokenVerifier{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
