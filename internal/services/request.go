package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/events"
	"github.com/bancotempo/timebank-backend/internal/models"
	"github.com/bancotempo/timebank-backend/pkg/logger"
)

const scheduledDateLayout = "2006-01-02"

type requestRSStore interface {
	Create(ctx context.Context, r *models.ServiceRequest) error
	Get(ctx context.Context, requestID string) (*models.ServiceRequest, error)
	UpdateStatus(ctx context.Context, requestID string, st models.RequestStatus) error
	ListByRequester(ctx context.Context, uid string) ([]*models.ServiceRequest, error)
	ListByProvider(ctx context.Context, uid string) ([]*models.ServiceRequest, error)
	Complete(ctx context.Context, requestID, providerUID string) (*models.ServiceRequest, *models.Transaction, error)
}

type catalogRSStore interface {
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
}

type profileRSStore interface {
	Get(ctx context.Context, uid string) (*models.Profile, error)
}

type requestService struct {
	requests requestRSStore
	catalog  catalogRSStore
	profiles profileRSStore
	events   events.Publisher
}

func NewRequestService(requests requestRSStore, catalog catalogRSStore, profiles profileRSStore, pub events.Publisher) *requestService {
	return &requestService{
		requests: requests,
		catalog:  catalog,
		profiles: profiles,
		events:   pub,
	}
}

type requestEvent struct {
	RequestID   string  `json:"requestId"`
	ServiceID   string  `json:"serviceId"`
	RequesterID string  `json:"requesterId"`
	ProviderID  string  `json:"providerId"`
	Status      string  `json:"status"`
	TimeCost    float64 `json:"timeCost"`
}

// Create quotes the request against the listing's rate and rejects it
// before anything is written when the requester's balance cannot cover the
// cost.
func (s *requestService) Create(ctx context.Context, uid string, req dto.CreateServiceRequestRequest) (*models.ServiceRequest, error) {
	log := logger.FromContext(ctx)

	if req.ServiceID == "" {
		return nil, errs.NewValidationError("serviceId is required")
	}
	if req.RequestedHours <= 0 {
		return nil, errs.NewValidationError("requestedHours must be positive")
	}
	if req.ScheduledDate != "" {
		if _, err := time.Parse(scheduledDateLayout, req.ScheduledDate); err != nil {
			return nil, errs.NewValidationError("scheduledDate must be YYYY-MM-DD")
		}
	}

	svc, err := s.catalog.GetService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, errs.NewValidationError("service is no longer active")
	}
	if svc.ProviderID == uid {
		return nil, errs.NewValidationError("cannot request your own service")
	}

	cost := req.RequestedHours * svc.TimeRate

	requester, err := s.profiles.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if requester.TimeBalance < cost {
		return nil, errs.NewInsufficientBalanceError(
			fmt.Sprintf("request costs %.1fh but balance is %.1fh", cost, requester.TimeBalance))
	}

	r := &models.ServiceRequest{
		RequestID:      uuid.New().String(),
		ServiceID:      svc.ServiceID,
		RequesterID:    uid,
		ProviderID:     svc.ProviderID,
		Description:    req.Description,
		RequestedHours: req.RequestedHours,
		TotalTimeCost:  cost,
		ScheduledDate:  req.ScheduledDate,
		Status:         models.RequestPending,
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}

	log.Info("service request created",
		"request_id", r.RequestID, "service_id", r.ServiceID, "cost", cost)
	s.publish(ctx, "request.created", r)
	return r, nil
}

// Accept moves a pending request to accepted. Provider-only.
func (s *requestService) Accept(ctx context.Context, uid, requestID string) (*models.ServiceRequest, error) {
	return s.respond(ctx, uid, requestID, models.RequestAccepted)
}

// Reject moves a pending request to rejected. Provider-only, terminal.
func (s *requestService) Reject(ctx context.Context, uid, requestID string) (*models.ServiceRequest, error) {
	return s.respond(ctx, uid, requestID, models.RequestRejected)
}

func (s *requestService) respond(ctx context.Context, uid, requestID string, target models.RequestStatus) (*models.ServiceRequest, error) {
	r, err := s.requests.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if r.ProviderID != uid {
		return nil, errs.NewAuthError("only the provider can respond to a request")
	}
	if r.Status != models.RequestPending {
		return nil, errs.NewInvalidTransitionError(
			fmt.Sprintf("request is %s, only pending requests can be %s", r.Status, target))
	}

	if err := s.requests.UpdateStatus(ctx, requestID, target); err != nil {
		return nil, err
	}
	r.Status = target

	s.publish(ctx, "request."+string(target), r)
	return r, nil
}

// Cancel lets the requester withdraw a pending request. Terminal.
func (s *requestService) Cancel(ctx context.Context, uid, requestID string) (*models.ServiceRequest, error) {
	r, err := s.requests.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if r.RequesterID != uid {
		return nil, errs.NewAuthError("only the requester can cancel a request")
	}
	if r.Status != models.RequestPending {
		return nil, errs.NewInvalidTransitionError(
			fmt.Sprintf("request is %s, only pending requests can be cancelled", r.Status))
	}

	if err := s.requests.UpdateStatus(ctx, requestID, models.RequestCancelled); err != nil {
		return nil, err
	}
	r.Status = models.RequestCancelled

	s.publish(ctx, "request.cancelled", r)
	return r, nil
}

// Complete finalizes an accepted request through the store's atomic
// transfer and reports the resulting transaction.
func (s *requestService) Complete(ctx context.Context, uid, requestID string) (*dto.CompleteRequestResult, error) {
	r, txn, err := s.requests.Complete(ctx, requestID, uid)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("service request completed",
		"request_id", r.RequestID, "transaction_id", txn.TransactionID, "hours", txn.TimeAmount)
	s.publish(ctx, "request.completed", r)

	return &dto.CompleteRequestResult{Request: r, Transaction: txn}, nil
}

// List returns the caller's requests split into received and sent, the way
// the dashboard shows them.
func (s *requestService) List(ctx context.Context, uid string) (*dto.RequestList, error) {
	received, err := s.requests.ListByProvider(ctx, uid)
	if err != nil {
		return nil, err
	}
	sent, err := s.requests.ListByRequester(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &dto.RequestList{Received: received, Sent: sent}, nil
}

func (s *requestService) publish(ctx context.Context, subject string, r *models.ServiceRequest) {
	s.events.Publish(ctx, subject, requestEvent{
		RequestID:   r.RequestID,
		ServiceID:   r.ServiceID,
		RequesterID: r.RequesterID,
		ProviderID:  r.ProviderID,
		Status:      string(r.Status),
		TimeCost:    r.TotalTimeCost,
	})
}
