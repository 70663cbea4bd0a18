package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"

	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("profiles").Doc(uid).Collection("transactions")
}

// List returns the user's transaction rows, newest first. Rows are written
// only by the atomic complete-request operation.
func (s *transactionStore) List(ctx context.Context, uid string) ([]*models.Transaction, error) {
	docs, err := s.collection(uid).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list transactions", err)
	}
	txs := make([]*models.Transaction, 0, len(docs))
	for _, d := range docs {
		var t models.Transaction
		if err := d.DataTo(&t); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		txs = append(txs, &t)
	}
	return txs, nil
}

// Count uses a server-side aggregation so the whole subcollection is never
// read just to size it.
func (s *transactionStore) Count(ctx context.Context, uid string) (int, error) {
	results, err := s.collection(uid).NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, errs.NewDatabaseError("read", "failed to count transactions", err)
	}
	total, ok := results["total"].(*firestorepb.Value)
	if !ok {
		return 0, errs.NewDatabaseError("read", "unexpected count aggregation result", nil)
	}
	return int(total.GetIntegerValue()), nil
}
