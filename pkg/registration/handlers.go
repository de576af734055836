// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/stockwise/registry-service/internal/cloudinary"
	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
)

// Multipart form memory threshold; photo parts above this spill to disk.
const maxFormMemory = 16 << 20

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/register", a.register)
}

type registerResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	UserID           string `json:"user_id,omitempty"`
	BusinessID       string `json:"business_id,omitempty"`
	UserRole         string `json:"user_role,omitempty"`
	TrialExpires     string `json:"trial_expires,omitempty"`
	UserPhotoURL     string `json:"user_photo_url,omitempty"`
	BusinessPhotoURL string `json:"business_photo_url,omitempty"`
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "registration.API.register")
	defer span.End()

	req, err := a.parseForm(r)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.service.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrBusinessNameTaken),
			errors.Is(err, ErrEmailTaken),
			errors.Is(err, ErrPhoneTaken):
			a.writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, cloudinary.ErrInvalidFileType),
			errors.Is(err, cloudinary.ErrFileTooLarge):
			a.writeError(w, http.StatusBadRequest, err.Error())
		default:
			a.logger.Errorf("registration failed: %v", err)
			a.writeError(w, http.StatusInternalServerError, "registration failed, please try again")
		}
		return
	}

	a.writeJSON(w, http.StatusCreated, registerResponse{
		Success:          true,
		Message:          "Account created successfully",
		UserID:           result.UserID,
		BusinessID:       result.BusinessID,
		UserRole:         "admin",
		TrialExpires:     result.TrialExpires,
		UserPhotoURL:     result.UserPhotoURL,
		BusinessPhotoURL: result.BusinessPhotoURL,
	})
}

func (a *API) parseForm(r *http.Request) (*Request, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, errors.New("invalid multipart form")
	}

	req := &Request{
		FirstName:    r.FormValue("first_name"),
		LastName:     r.FormValue("last_name"),
		Email:        r.FormValue("email"),
		Password:     r.FormValue("password"),
		Phone:        r.FormValue("phone"),
		Gender:       r.FormValue("gender"),
		BusinessName: r.FormValue("business_name"),
		District:     r.FormValue("district"),
		Sector:       r.FormValue("sector"),
		Cell:         r.FormValue("cell"),
		Village:      r.FormValue("village"),
	}

	userPhoto, err := a.formImage(r, "user_photo")
	if err != nil {
		return nil, err
	}
	req.UserPhoto = userPhoto

	businessPhoto, err := a.formImage(r, "business_photo")
	if err != nil {
		return nil, err
	}
	req.BusinessPhoto = businessPhoto

	return req, nil
}

func (a *API) formImage(r *http.Request, field string) (*Image, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.New("invalid " + field + " part")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("failed to read " + field)
	}

	return &Image{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

func (a *API) writeJSON(w http.ResponseWriter, code int, body registerResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *API) writeError(w http.ResponseWriter, code int, message string) {
	a.writeJSON(w, code, registerResponse{Success: false, Message: message})
}
