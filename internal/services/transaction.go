package services

import (
	"context"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/models"
)

type transactionTSStore interface {
	List(ctx context.Context, uid string) ([]*models.Transaction, error)
}

type profileTSStore interface {
	Get(ctx context.Context, uid string) (*models.Profile, error)
}

type transactionService struct {
	txs      transactionTSStore
	profiles profileTSStore
}

func NewTransactionService(txs transactionTSStore, profiles profileTSStore) *transactionService {
	return &transactionService{txs: txs, profiles: profiles}
}

// History returns the caller's transactions oriented relative to them,
// together with the authoritative profile balance.
func (s *transactionService) History(ctx context.Context, uid string) (*dto.TransactionHistory, error) {
	profile, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	txs, err := s.txs.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	views := make([]dto.TransactionView, 0, len(txs))
	for _, t := range txs {
		view := dto.TransactionView{
			TransactionID:    t.TransactionID,
			ServiceRequestID: t.ServiceRequestID,
			TimeAmount:       t.TimeAmount,
			Description:      t.Description,
			CreatedAt:        t.CreatedAt,
		}
		if t.ToUserID == uid {
			view.Direction = dto.DirectionEarned
			view.CounterpartyID = t.FromUserID
		} else {
			view.Direction = dto.DirectionSpent
			view.CounterpartyID = t.ToUserID
		}
		views = append(views, view)
	}

	return &dto.TransactionHistory{
		Transactions:   views,
		CurrentBalance: profile.TimeBalance,
	}, nil
}
