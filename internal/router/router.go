package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bancotempo/timebank-backend/internal/handlers"
	"github.com/bancotempo/timebank-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps, requestTimeout time.Duration) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	am := middleware.NewMiddleware(deps.Firebase)

	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Timeout(requestTimeout))

	prh := handlers.NewProfileHandlers(deps)
	csh := handlers.NewCatalogHandlers(deps)
	rqh := handlers.NewRequestHandlers(deps)
	txh := handlers.NewTransactionHandlers(deps)
	ldh := handlers.NewLedgerHandlers(deps)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/categories", csh.CategoryRoutes())

	r.Group(func(r chi.Router) {
		r.Use(am.FirebaseAuth)

		r.Mount("/profiles", prh.ProfileRoutes())
		r.Mount("/services", csh.ServiceRoutes())
		r.Mount("/requests", rqh.RequestRoutes())
		r.Mount("/transactions", txh.TransactionRoutes())
		r.Mount("/summary", txh.SummaryRoutes())
		r.Mount("/ledger", ldh.LedgerRoutes())
		r.Mount("/favorites", ldh.FavoriteRoutes())
	})

	return r
}
