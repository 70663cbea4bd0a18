package services

import (
	"context"
	"testing"
	"time"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/models"
	"github.com/bancotempo/timebank-backend/pkg/helpers"
)

type stubTransactionStore struct {
	txs []*models.Transaction
}

func (s *stubTransactionStore) List(_ context.Context, _ string) ([]*models.Transaction, error) {
	return s.txs, nil
}

func (s *stubTransactionStore) Count(_ context.Context, _ string) (int, error) {
	return len(s.txs), nil
}

func TestTransactionServiceHistory(t *testing.T) {
	now := time.Now()
	txs := &stubTransactionStore{
		txs: []*models.Transaction{
			{
				TransactionID: "txn-1",
				FromUserID:    "other-1",
				ToUserID:      "uid-1",
				TimeAmount:    2,
				CreatedAt:     now,
			},
			{
				TransactionID: "txn-2",
				FromUserID:    "uid-1",
				ToUserID:      "other-2",
				TimeAmount:    1.5,
				CreatedAt:     now.Add(-time.Hour),
			},
		},
	}
	profiles := &stubProfileLookup{
		profiles: map[string]*models.Profile{
			"uid-1": {UID: "uid-1", TimeBalance: 15.5},
		},
	}
	svc := NewTransactionService(txs, profiles)
	ctx := helpers.TestCtx()

	history, err := svc.History(ctx, "uid-1")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}

	if history.CurrentBalance != 15.5 {
		t.Fatalf("CurrentBalance = %v, want 15.5", history.CurrentBalance)
	}
	if len(history.Transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(history.Transactions))
	}

	earned := history.Transactions[0]
	if earned.Direction != dto.DirectionEarned || earned.CounterpartyID != "other-1" {
		t.Fatalf("inbound transaction oriented wrong: %+v", earned)
	}
	spent := history.Transactions[1]
	if spent.Direction != dto.DirectionSpent || spent.CounterpartyID != "other-2" {
		t.Fatalf("outbound transaction oriented wrong: %+v", spent)
	}
}
