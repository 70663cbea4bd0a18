package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/bancotempo/timebank-backend/internal/ledger"
	"github.com/bancotempo/timebank-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client

	ProfileSvc     ProfileService
	CatalogSvc     CatalogService
	RequestSvc     RequestService
	TransactionSvc TransactionService
	SummarySvc     SummaryService

	Ledger    *ledger.Ledger
	Favorites *ledger.Favorites
}
