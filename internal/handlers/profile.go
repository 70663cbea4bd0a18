package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/middleware"
	"github.com/bancotempo/timebank-backend/internal/response"
)

type ProfileService interface {
	Register(ctx context.Context, uid string, req dto.RegisterProfileRequest) (*dto.ProfileResponse, error)
	Get(ctx context.Context, uid string) (*dto.ProfileResponse, error)
	GetPublic(ctx context.Context, uid string) (*dto.PublicProfile, error)
	Update(ctx context.Context, uid string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Delete(ctx context.Context, uid string) error
}

type profileHandlers struct {
	ResponseHandler response.ResponseHandler
	ProfileSvc      ProfileService
}

func NewProfileHandlers(deps *Deps) *profileHandlers {
	return &profileHandlers{
		ResponseHandler: deps.ResponseHandler,
		ProfileSvc:      deps.ProfileSvc,
	}
}

func (h *profileHandlers) ProfileRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Register)
	r.Get("/me", h.GetOwn)
	r.Patch("/me", h.Update)
	r.Delete("/me", h.Delete)
	r.Get("/{uid}", h.GetPublic)
	return r
}

func (h *profileHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var body dto.RegisterProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed request body"))
		return
	}

	uid := middleware.UID(r.Context())
	profile, err := h.ProfileSvc.Register(r.Context(), uid, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, profile)
}

func (h *profileHandlers) GetOwn(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())

	profile, err := h.ProfileSvc.Get(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, profile)
}

func (h *profileHandlers) GetPublic(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	profile, err := h.ProfileSvc.GetPublic(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, profile)
}

func (h *profileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed request body"))
		return
	}

	uid := middleware.UID(r.Context())
	profile, err := h.ProfileSvc.Update(r.Context(), uid, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, profile)
}

func (h *profileHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())

	if err := h.ProfileSvc.Delete(r.Context(), uid); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}
