// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package branches

import (
	"encoding/json"
	"errors"
	"net/http"

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
	mux.Route("/api/v0/branches", func(r chi.Router) {
		r.Use(a.protect)
		r.Get("/", a.list)
		r.Post("/", a.create)
		r.Get("/{id}", a.get)
		r.Put("/{id}", a.update)
		r.Delete("/{id}", a.delete)
	})
}

type branchRequest struct {
	Name     string `json:"name" validate:"required"`
	District string `json:"district" validate:"required"`
	Sector   string `json:"sector" validate:"required"`
	Cell     string `json:"cell" validate:"required"`
	Village  string `json:"village" validate:"required"`
}

type branchResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	District string `json:"district"`
	Sector   string `json:"sector"`
	Cell     string `json:"cell"`
	Village  string `json:"village"`
}

func toBranchResponse(b *types.Branch) branchResponse {
	return branchResponse{
		ID:       b.ID.Hex(),
		Name:     b.Name,
		District: b.District,
		Sector:   b.Sector,
		Cell:     b.Cell,
		Village:  b.Village,
	}
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "branches.API.create")
	defer span.End()

	var req branchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	branch, err := a.service.CreateBranch(ctx, &types.Branch{
		Name:     req.Name,
		District: req.District,
		Sector:   req.Sector,
		Cell:     req.Cell,
		Village:  req.Village,
	})
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, toBranchResponse(branch))
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "branches.API.list")
	defer span.End()

	branches, err := a.service.ListBranches(ctx)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	resp := make([]branchResponse, len(branches))
	for i, b := range branches {
		resp[i] = toBranchResponse(b)
	}
	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "branches.API.get")
	defer span.End()

	branch, err := a.service.GetBranch(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, toBranchResponse(branch))
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "branches.API.update")
	defer span.End()

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	branch, err := a.service.UpdateBranch(ctx, chi.URLParam(r, "id"), fields)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, toBranchResponse(branch))
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "branches.API.delete")
	defer span.End()

	if err := a.service.DeleteBranch(ctx, chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]string{"message": "branch deleted"})
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrBranchExists):
		a.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrEmptyUpdate), errors.Is(err, storage.ErrInvalidID):
		a.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		a.writeError(w, http.StatusNotFound, "branch not found")
	default:
		a.logger.Errorf("branch operation failed: %v", err)
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
