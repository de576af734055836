// Copyright 2025 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/stockwise/registry-service/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw bearer credential against the identity provider.
	// Returns the provider-asserted subject ID if the token is valid, otherwise an error.
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

// UserLoaderInterface is the subset of the storage interface the middleware
// needs to resolve a verified subject to a user record.
type UserLoaderInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
}
