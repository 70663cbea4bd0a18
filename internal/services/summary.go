package services

import (
	"context"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/models"
)

type profileSSStore interface {
	Get(ctx context.Context, uid string) (*models.Profile, error)
}

type requestSSStore interface {
	ListByRequester(ctx context.Context, uid string) ([]*models.ServiceRequest, error)
	ListByProvider(ctx context.Context, uid string) ([]*models.ServiceRequest, error)
}

type transactionSSStore interface {
	Count(ctx context.Context, uid string) (int, error)
}

type summaryService struct {
	profiles profileSSStore
	requests requestSSStore
	txs      transactionSSStore
}

func NewSummaryService(profiles profileSSStore, requests requestSSStore, txs transactionSSStore) *summaryService {
	return &summaryService{profiles: profiles, requests: requests, txs: txs}
}

// GetSummary aggregates the dashboard header numbers: balance and
// experience from the profile, pending counts from the request lists,
// completed exchanges from the transaction rows.
func (s *summaryService) GetSummary(ctx context.Context, uid string) (*dto.Summary, error) {
	profile, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	received, err := s.requests.ListByProvider(ctx, uid)
	if err != nil {
		return nil, err
	}
	sent, err := s.requests.ListByRequester(ctx, uid)
	if err != nil {
		return nil, err
	}
	exchanges, err := s.txs.Count(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &dto.Summary{
		TimeBalance:        profile.TimeBalance,
		PendingReceived:    countPending(received),
		PendingSent:        countPending(sent),
		CompletedExchanges: exchanges,
		ExperienceHours:    profile.ExperienceHours,
	}, nil
}

func countPending(requests []*models.ServiceRequest) int {
	n := 0
	for _, r := range requests {
		if r.Status == models.RequestPending {
			n++
		}
	}
	return n
}
