package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/middleware"
	"github.com/bancotempo/timebank-backend/internal/response"
)

type TransactionService interface {
	History(ctx context.Context, uid string) (*dto.TransactionHistory, error)
}

type SummaryService interface {
	GetSummary(ctx context.Context, uid string) (*dto.Summary, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
	SummarySvc      SummaryService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
		SummarySvc:      deps.SummarySvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.History)
	return r
}

func (h *transactionHandlers) SummaryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Summary)
	return r
}

func (h *transactionHandlers) History(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())

	history, err := h.TransactionSvc.History(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, history)
}

func (h *transactionHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())

	summary, err := h.SummarySvc.GetSummary(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, summary)
}
