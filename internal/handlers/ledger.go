package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/ledger"
	"github.com/bancotempo/timebank-backend/internal/response"
)

type ledgerHandlers struct {
	ResponseHandler response.ResponseHandler
	Ledger          *ledger.Ledger
	Favorites       *ledger.Favorites
}

func NewLedgerHandlers(deps *Deps) *ledgerHandlers {
	return &ledgerHandlers{
		ResponseHandler: deps.ResponseHandler,
		Ledger:          deps.Ledger,
		Favorites:       deps.Favorites,
	}
}

func (h *ledgerHandlers) LedgerRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Entries)
	r.Get("/balance", h.Balance)
	r.Post("/entries", h.AddEntry)
	r.Post("/entries/{entryId}/complete", h.CompleteEntry)
	r.Post("/entries/{entryId}/cancel", h.CancelEntry)
	return r
}

func (h *ledgerHandlers) FavoriteRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListFavorites)
	r.Post("/{serviceId}/toggle", h.ToggleFavorite)
	return r
}

func (h *ledgerHandlers) Entries(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.Ledger.Entries())
}

func (h *ledgerHandlers) Balance(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK,
		dto.LedgerBalance{Balance: h.Ledger.Balance()})
}

func (h *ledgerHandlers) AddEntry(w http.ResponseWriter, r *http.Request) {
	var body dto.AddLedgerEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("malformed request body"))
		return
	}

	entry := ledger.Entry{
		ID: body.ID,
		Service: ledger.ServiceSnapshot{
			Title:    body.ServiceTitle,
			Category: body.ServiceCategory,
		},
		Provider: ledger.ProviderSnapshot{
			Name:      body.ProviderName,
			AvatarURL: body.ProviderAvatarURL,
		},
		Hours: body.Hours,
		Date:  body.Date,
		Type:  ledger.EntryType(body.Type),
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if err := h.Ledger.Add(r.Context(), entry); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, entry)
}

func (h *ledgerHandlers) CompleteEntry(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Ledger.Complete)
}

func (h *ledgerHandlers) CancelEntry(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Ledger.Cancel)
}

func (h *ledgerHandlers) transition(w http.ResponseWriter, r *http.Request,
	action func(ctx context.Context, id string) error) {

	entryID := chi.URLParam(r, "entryId")

	if err := action(r.Context(), entryID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK,
		dto.LedgerBalance{Balance: h.Ledger.Balance()})
}

func (h *ledgerHandlers) ListFavorites(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.Favorites.List())
}

func (h *ledgerHandlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "serviceId")
	if serviceID == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("service id is required"))
		return
	}

	favorite := h.Favorites.Toggle(r.Context(), serviceID)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK,
		dto.FavoriteState{ServiceID: serviceID, Favorite: favorite})
}
