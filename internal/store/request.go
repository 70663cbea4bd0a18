package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/models"
)

type requestStore struct {
	client *firestore.Client
}

func NewRequestStore(client *firestore.Client) *requestStore {
	return &requestStore{client: client}
}

func (s *requestStore) collection() *firestore.CollectionRef {
	return s.client.Collection("service_requests")
}

func (s *requestStore) profileDoc(uid string) *firestore.DocumentRef {
	return s.client.Collection("profiles").Doc(uid)
}

func (s *requestStore) transactionDoc(uid, transactionID string) *firestore.DocumentRef {
	return s.profileDoc(uid).Collection("transactions").Doc(transactionID)
}

func (s *requestStore) Create(ctx context.Context, r *models.ServiceRequest) error {
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	_, err := s.collection().Doc(r.RequestID).Create(ctx, r)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create service request", err)
	}
	return nil
}

func (s *requestStore) Get(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	doc, err := s.collection().Doc(requestID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("service request not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get service request", err)
	}
	var r models.ServiceRequest
	if err := doc.DataTo(&r); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse service request data", err)
	}
	return &r, nil
}

func (s *requestStore) UpdateStatus(ctx context.Context, requestID string, st models.RequestStatus) error {
	_, err := s.collection().Doc(requestID).Update(ctx, []firestore.Update{
		{Path: "status", Value: st},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.NewNotFoundError("service request not found")
		}
		return errs.NewDatabaseError("update", "failed to update service request", err)
	}
	return nil
}

func (s *requestStore) ListByRequester(ctx context.Context, uid string) ([]*models.ServiceRequest, error) {
	return s.list(ctx, "requesterId", uid)
}

func (s *requestStore) ListByProvider(ctx context.Context, uid string) ([]*models.ServiceRequest, error) {
	return s.list(ctx, "providerId", uid)
}

func (s *requestStore) list(ctx context.Context, field, uid string) ([]*models.ServiceRequest, error) {
	docs, err := s.collection().
		Where(field, "==", uid).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list service requests", err)
	}
	requests := make([]*models.ServiceRequest, 0, len(docs))
	for _, d := range docs {
		var r models.ServiceRequest
		if err := d.DataTo(&r); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse service request data", err)
		}
		requests = append(requests, &r)
	}
	return requests, nil
}

// Complete finalizes an accepted request in one Firestore transaction:
// status flip, balance transfer requester→provider, provider experience
// bump, and a transaction row under each participant. The status and the
// requester's balance are re-checked inside the transaction so a concurrent
// completion or spend cannot double-pay.
func (s *requestStore) Complete(ctx context.Context, requestID, providerUID string) (*models.ServiceRequest, *models.Transaction, error) {
	reqRef := s.collection().Doc(requestID)

	var (
		request models.ServiceRequest
		txn     models.Transaction
	)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(reqRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errs.NewNotFoundError("service request not found")
			}
			return err
		}
		if err := snap.DataTo(&request); err != nil {
			return err
		}

		if request.ProviderID != providerUID {
			return errs.NewAuthError("only the provider can complete a request")
		}
		if request.Status != models.RequestAccepted {
			return errs.NewInvalidTransitionError(
				fmt.Sprintf("request is %s, only accepted requests can be completed", request.Status))
		}

		// All reads must precede writes inside a Firestore transaction.
		requesterRef := s.profileDoc(request.RequesterID)
		providerRef := s.profileDoc(request.ProviderID)

		var requester, provider models.Profile
		requesterSnap, err := tx.Get(requesterRef)
		if err != nil {
			return err
		}
		if err := requesterSnap.DataTo(&requester); err != nil {
			return err
		}
		providerSnap, err := tx.Get(providerRef)
		if err != nil {
			return err
		}
		if err := providerSnap.DataTo(&provider); err != nil {
			return err
		}

		if requester.TimeBalance < request.TotalTimeCost {
			return errs.NewInsufficientBalanceError(
				fmt.Sprintf("requester balance %.1fh is below the %.1fh cost",
					requester.TimeBalance, request.TotalTimeCost))
		}

		now := time.Now()
		txn = models.Transaction{
			TransactionID:    uuid.New().String(),
			ServiceRequestID: request.RequestID,
			FromUserID:       request.RequesterID,
			ToUserID:         request.ProviderID,
			TimeAmount:       request.TotalTimeCost,
			Type:             models.TransactionTypeServicePayment,
			Description:      request.Description,
			CreatedAt:        now,
		}

		if err := tx.Update(reqRef, []firestore.Update{
			{Path: "status", Value: models.RequestCompleted},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}
		if err := tx.Update(requesterRef, []firestore.Update{
			{Path: "timeBalance", Value: requester.TimeBalance - request.TotalTimeCost},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}
		if err := tx.Update(providerRef, []firestore.Update{
			{Path: "timeBalance", Value: provider.TimeBalance + request.TotalTimeCost},
			{Path: "experienceHours", Value: provider.ExperienceHours + request.RequestedHours},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}
		if err := tx.Create(s.transactionDoc(request.RequesterID, txn.TransactionID), txn); err != nil {
			return err
		}
		return tx.Create(s.transactionDoc(request.ProviderID, txn.TransactionID), txn)
	})
	if err != nil {
		switch err.(type) {
		case *errs.NotFoundError, *errs.AuthError, *errs.InvalidTransitionError, *errs.InsufficientBalanceError:
			return nil, nil, err
		}
		return nil, nil, errs.NewDatabaseError("transaction", "failed to complete service request", err)
	}

	request.Status = models.RequestCompleted
	return &request, &txn, nil
}
