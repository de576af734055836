// Copyright 2025 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/storage"
	"github.com/stockwise/registry-service/internal/tracing"
	"github.com/stockwise/registry-service/internal/types"
)

const tokenCookieName = "token"

type Middleware struct {
	verifier TokenVerifierInterface
	users    UserLoaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Protect wraps a handler with the full request-authorization workflow:
// credential extraction, provider verification, user-record resolution and
// policy checks. The wrapped handler only runs with a Principal attached.
func (m *Middleware) Protect() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Protect")
			defer span.End()

			token, found := m.getToken(r)
			if !found {
				m.logger.Security().AuthnFailure("", "no_token")
				m.errorResponse(w, http.StatusUnauthorized, "not authorized, no token provided")
				return
			}

			subject, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				// Provider detail is logged, never returned.
				m.logger.Debugf("token verification failed: %v", err)
				m.logger.Security().AuthnFailure("", "token_invalid")
				m.errorResponse(w, http.StatusUnauthorized, "not authorized, token failed")
				return
			}

			user, err := m.users.GetUserByID(ctx, subject)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					// Valid credential with no record is an inconsistency
					// state, not a wrong-password case.
					m.logger.Warnf("no user record for verified subject %s", subject)
					m.errorResponse(w, http.StatusNotFound, "user not found, please log in again")
					return
				}
				m.logger.Errorf("failed to load user %s: %v", subject, err)
				m.errorResponse(w, http.StatusInternalServerError, "something went wrong")
				return
			}

			if !user.IsActive {
				m.logger.Security().AuthzFailure(subject, "account_inactive")
				m.errorResponse(w, http.StatusForbidden, "account is not activated, please contact support")
				return
			}

			if user.Role == types.RoleStaff && user.Branch == nil {
				m.logger.Security().AuthzFailure(subject, "staff_without_branch")
				m.errorResponse(w, http.StatusForbidden, "staff user must be assigned to a branch")
				return
			}

			principal := &types.Principal{
				ID:       user.ID,
				Role:     user.Role,
				Username: user.FullName(),
			}
			if user.Branch != nil {
				principal.Branch = user.Branch.Hex()
			}

			ctx = WithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getToken prefers the Authorization bearer header and falls back to the
// token cookie.
func (m *Middleware) getToken(r *http.Request) (string, bool) {
	bearer := r.Header.Get("Authorization")
	if strings.HasPrefix(bearer, "Bearer ") {
		return strings.TrimPrefix(bearer, "Bearer "), true
	}

	if cookie, err := r.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	return "", false
}

func (m *Middleware) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(verifier TokenVerifierInterface, users UserLoaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		users:    users,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
