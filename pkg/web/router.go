// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
	"github.com/stockwise/registry-service/pkg/branches"
	"github.com/stockwise/registry-service/pkg/metrics"
	"github.com/stockwise/registry-service/pkg/registration"
	"github.com/stockwise/registry-service/pkg/status"
	"github.com/stockwise/registry-service/pkg/transactions"
)

func NewRouter(
	registrationAPI *registration.API,
	branchesAPI *branches.API,
	transactionsAPI *transactions.API,
	statusAPI *status.API,
	metricsAPI *metrics.API,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metricsAPI.RegisterEndpoints(router)
	statusAPI.RegisterEndpoints(router)
	registrationAPI.RegisterEndpoints(router)
	branchesAPI.RegisterEndpoints(router)
	transactionsAPI.RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
