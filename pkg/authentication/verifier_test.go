// Copyright 2025 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

// The manual key-set path is used against issuers without a discovery
// document, such as the Firebase Auth emulator. A malformed credential is
// rejected during parsing, before any key fetch happens, so the verifier
// built here never talks to the JWKS endpoint.
func TestIDTokenVerifierDirect_RejectsMalformedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), "authentication.IDTokenVerifier.VerifyToken").Return(ctx, trace.SpanFromContext(ctx))
	mockLogger := NewMockLoggerInterface(ctrl)

	issuer := SecureTokenIssuer("demo-project")
	oidcVerifier, err := NewProviderWithJWKS(ctx, issuer, "http://127.0.0.1:1/jwks.json", "demo-project")
	if err != nil {
		t.Fatalf("unexpected error building verifier: %v", err)
	}

	verifier := NewIDTokenVerifierDirect(oidcVerifier, mockTracer, nil, mockLogger)

	subject, err := verifier.VerifyToken(ctx, "not-a-jwt")
	if err == nil {
		t.Fatal("expected verification to fail for a malformed token")
	}
	if subject != "" {
		t.Errorf("expected empty subject, got %q", subject)
	}
}
