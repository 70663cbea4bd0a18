package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/models"
)

type profileStore struct {
	client     *firestore.Client
	collection *firestore.CollectionRef
}

func NewProfileStore(client *firestore.Client) *profileStore {
	return &profileStore{
		client:     client,
		collection: client.Collection("profiles"),
	}
}

func (s *profileStore) Create(ctx context.Context, p *models.Profile) error {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	_, err := s.collection.Doc(p.UID).Create(ctx, p)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errs.NewAlreadyExistsError("profile already exists")
		}
		return errs.NewDatabaseError("create", "failed to create profile", err)
	}
	return nil
}

func (s *profileStore) Get(ctx context.Context, uid string) (*models.Profile, error) {
	doc, err := s.collection.Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("profile not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get profile", err)
	}
	var p models.Profile
	if err := doc.DataTo(&p); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse profile data", err)
	}
	return &p, nil
}

func (s *profileStore) Update(ctx context.Context, p *models.Profile) error {
	p.UpdatedAt = time.Now()
	_, err := s.collection.Doc(p.UID).Set(ctx, p, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to update profile", err)
	}
	return nil
}

func (s *profileStore) Delete(ctx context.Context, uid string) error {
	_, err := s.collection.Doc(uid).Delete(ctx)
	if err != nil {
		return errs.NewDatabaseError("delete", "failed to delete profile", err)
	}
	return nil
}
