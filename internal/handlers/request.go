package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/middleware"
	"github.com/bancotempo/timebank-backend/internal/models"
	"github.com/bancotempo/timebank-backend/internal/response"
)

type RequestService interface {
	Create(ctx context.Context, uid string, req dto.CreateServiceRequestRequest) (*models.ServiceRequest, error)
	Accept(ctx context.Context, uid, requestID string) (*models.ServiceRequest, error)
	Reject(ctx context.Context, uid, requestID string) (*models.ServiceRequest, error)
	Cancel(ctx context.Context, uid, requestID string) (*models.ServiceRequest, error)
	Complete(ctx context.Context, uid, requestID string) (*dto.CompleteRequestResult, error)
	List(ctx context.Context, uid string) (*dto.RequestList, error)
}

type requestHandlers struct {
	ResponseHandler response.ResponseHandler
	RequestSvc      RequestService
}

func NewRequestHandlers(deps *Deps) *requestHandlers {
	return &requestHandlers{
		ResponseHandler: deps.ResponseHandler,
		RequestSvc:      deps.RequestSvc,
	}
}

func (h *requestHandlers) RequestRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Post("/{requestId}/accept", h.Accept)
	r.Post("/{requestId}/reject", h.Reject)
	r.Post("/{requestId}/cancel", h.Cancel)
	r.Post("/{requestId}/complete", h.Complete)
	return r
}

func (h *requestHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateServiceRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed request body"))
		return
	}

	uid := middleware.UID(r.Context())
	request, err := h.RequestSvc.Create(r.Context(), uid, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, request)
}

func (h *requestHandlers) List(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())

	list, err := h.RequestSvc.List(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, list)
}

func (h *requestHandlers) Accept(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.RequestSvc.Accept)
}

func (h *requestHandlers) Reject(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.RequestSvc.Reject)
}

func (h *requestHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.RequestSvc.Cancel)
}

func (h *requestHandlers) respond(w http.ResponseWriter, r *http.Request,
	action func(ctx context.Context, uid, requestID string) (*models.ServiceRequest, error)) {

	uid := middleware.UID(r.Context())
	requestID := chi.URLParam(r, "requestId")

	request, err := action(r.Context(), uid, requestID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, request)
}

func (h *requestHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	requestID := chi.URLParam(r, "requestId")

	result, err := h.RequestSvc.Complete(r.Context(), uid, requestID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
