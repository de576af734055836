// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package transactions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/storage"
	"github.com/stockwise/registry-service/internal/tracing"
	"github.com/stockwise/registry-service/internal/types"
)

type API struct {
	service  ServiceInterface
	protect  func(http.Handler) http.Handler
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	protect func(http.Handler) http.Handler,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		protect:  protect,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api/v0/transactions", func(r chi.Router) {
		r.Use(a.protect)
		r.Post("/", a.record)
		r.Get("/{businessID}", a.list)
	})
}

type transactionRequest struct {
	BusinessID string  `json:"business_id" validate:"required"`
	PayerPhone string  `json:"payer_phone" validate:"required,e164"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Plan       string  `json:"plan" validate:"required,oneof=free standard business"`
	Date       string  `json:"date,omitempty"`
}

type transactionResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"business_id"`
	PayerPhone string    `json:"payer_phone"`
	Date       time.Time `json:"date"`
	Amount     float64   `json:"amount"`
	Plan       string    `json:"plan"`
	Confirm    bool      `json:"confirm"`
}

func toTransactionResponse(t *types.Transaction) transactionResponse {
	return transactionResponse{
		ID:         t.ID.Hex(),
		BusinessID: t.BusinessID,
		PayerPhone: t.PayerPhone,
		Date:       t.Date,
		Amount:     t.Amount,
		Plan:       t.Plan,
		Confirm:    t.Confirm,
	}
}

func (a *API) record(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "transactions.API.record")
	defer span.End()

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx := &types.Transaction{
		BusinessID: req.BusinessID,
		PayerPhone: req.PayerPhone,
		Amount:     req.Amount,
		Plan:       req.Plan,
	}
	if req.Date != "" {
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			a.writeError(w, http.StatusBadRequest, "date must be RFC 3339")
			return
		}
		tx.Date = date
	}

	recorded, err := a.service.RecordTransaction(ctx, tx)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, toTransactionResponse(recorded))
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "transactions.API.list")
	defer span.End()

	records, err := a.service.ListTransactions(ctx, chi.URLParam(r, "businessID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	resp := make([]transactionResponse, len(records))
	for i, t := range records {
		resp[i] = toTransactionResponse(t)
	}
	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidID):
		a.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "not found")
	default:
		a.logger.Errorf("transaction operation failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "something went wrong")
	}
}

func (a *API) writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *API) writeError(w http.ResponseWriter, code int, message string) {
	a.writeJSON(w, code, map[string]interface{}{
		"status":  code,
		"message": message,
	})
}
