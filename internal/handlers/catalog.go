package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/middleware"
	"github.com/bancotempo/timebank-backend/internal/models"
	"github.com/bancotempo/timebank-backend/internal/response"
)

type CatalogService interface {
	CreateService(ctx context.Context, uid string, req dto.CreateServiceRequest) (*models.Service, error)
	ListServices(ctx context.Context, q dto.ServiceQuery) ([]*models.Service, error)
	GetServiceDetail(ctx context.Context, serviceID string) (*dto.ServiceDetail, error)
	DeactivateService(ctx context.Context, uid, serviceID string) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

type catalogHandlers struct {
	ResponseHandler response.ResponseHandler
	CatalogSvc      CatalogService
}

func NewCatalogHandlers(deps *Deps) *catalogHandlers {
	return &catalogHandlers{
		ResponseHandler: deps.ResponseHandler,
		CatalogSvc:      deps.CatalogSvc,
	}
}

func (h *catalogHandlers) ServiceRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateService)
	r.Get("/", h.ListServices)
	r.Get("/{serviceId}", h.GetService)
	r.Delete("/{serviceId}", h.DeactivateService)
	return r
}

func (h *catalogHandlers) CategoryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListCategories)
	return r
}

func (h *catalogHandlers) CreateService(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed request body"))
		return
	}

	uid := middleware.UID(r.Context())
	svc, err := h.CatalogSvc.CreateService(r.Context(), uid, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, svc)
}

func (h *catalogHandlers) ListServices(w http.ResponseWriter, r *http.Request) {
	q := dto.ServiceQuery{
		Search:     r.URL.Query().Get("search"),
		CategoryID: r.URL.Query().Get("category"),
		Zone:       r.URL.Query().Get("zone"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("limit must be a non-negative integer"))
			return
		}
		q.Limit = limit
	}

	services, err := h.CatalogSvc.ListServices(r.Context(), q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, services)
}

func (h *catalogHandlers) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceId")

	detail, err := h.CatalogSvc.GetServiceDetail(r.Context(), serviceID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, detail)
}

func (h *catalogHandlers) DeactivateService(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	serviceID := chi.URLParam(r, "serviceId")

	if err := h.CatalogSvc.DeactivateService(r.Context(), uid, serviceID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

func (h *catalogHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CatalogSvc.ListCategories(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, categories)
}
