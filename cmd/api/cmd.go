package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/bancotempo/timebank-backend/internal/bootstrap"
	"github.com/bancotempo/timebank-backend/internal/config"
	"github.com/bancotempo/timebank-backend/internal/crypto"
	"github.com/bancotempo/timebank-backend/internal/events"
	"github.com/bancotempo/timebank-backend/internal/handlers"
	"github.com/bancotempo/timebank-backend/internal/ledger"
	"github.com/bancotempo/timebank-backend/internal/response"
	"github.com/bancotempo/timebank-backend/internal/router"
	"github.com/bancotempo/timebank-backend/internal/services"
	"github.com/bancotempo/timebank-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg, err := config.New()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// helpers
	kmsHelper := crypto.NewKMS(bs.KMS, cfg.KMSKeyName)

	var publisher events.Publisher = events.Noop{}
	if bs.NATS != nil {
		publisher = events.NewNATS(bs.NATS)
	}

	// stores
	pstore := store.NewProfileStore(bs.Firestore)
	cstore := store.NewCatalogStore(bs.Firestore)
	rstore := store.NewRequestStore(bs.Firestore)
	tstore := store.NewTransactionStore(bs.Firestore)

	// services
	pserv := services.NewProfileService(pstore, kmsHelper)
	cserv := services.NewCatalogService(cstore, pserv)
	rserv := services.NewRequestService(rstore, cstore, pstore, publisher)
	tserv := services.NewTransactionService(tstore, pstore)
	sserv := services.NewSummaryService(pstore, rstore, tstore)

	// local demo state
	startupCtx := context.Background()
	ldg, err := ledger.New(startupCtx, bs.LocalState)
	exitOnError("ledger restore failed", err, bs.Log)
	favs, err := ledger.NewFavorites(startupCtx, bs.LocalState)
	exitOnError("favorites restore failed", err, bs.Log)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.ProfileSvc = pserv
	deps.CatalogSvc = cserv
	deps.RequestSvc = rserv
	deps.TransactionSvc = tserv
	deps.SummarySvc = sserv
	deps.Ledger = ldg
	deps.Favorites = favs

	// router
	r := router.NewRouter(deps, cfg.RequestTimeout)
	err = http.ListenAndServe(cfg.ListenAddr, r)
	exitOnError("server start failed", err, bs.Log)
}
