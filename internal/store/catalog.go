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

type catalogStore struct {
	client *firestore.Client
}

func NewCatalogStore(client *firestore.Client) *catalogStore {
	return &catalogStore{client: client}
}

func (s *catalogStore) services() *firestore.CollectionRef {
	return s.client.Collection("services")
}

func (s *catalogStore) categories() *firestore.CollectionRef {
	return s.client.Collection("service_categories")
}

func (s *catalogStore) CreateService(ctx context.Context, svc *models.Service) error {
	now := time.Now()
	if svc.CreatedAt.IsZero() {
		svc.CreatedAt = now
	}
	svc.UpdatedAt = now
	_, err := s.services().Doc(svc.ServiceID).Create(ctx, svc)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create service", err)
	}
	return nil
}

func (s *catalogStore) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	doc, err := s.services().Doc(serviceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("service not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get service", err)
	}
	var svc models.Service
	if err := doc.DataTo(&svc); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse service data", err)
	}
	return &svc, nil
}

// ListActive returns active listings, optionally narrowed to a category.
// Free-text and zone filtering happen at the service layer.
func (s *catalogStore) ListActive(ctx context.Context, categoryID string, limit int) ([]*models.Service, error) {
	q := s.services().Query.Where("isActive", "==", true)
	if categoryID != "" {
		q = q.Where("categoryId", "==", categoryID)
	}
	q = q.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list services", err)
	}
	services := make([]*models.Service, 0, len(docs))
	for _, d := range docs {
		var svc models.Service
		if err := d.DataTo(&svc); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse service data", err)
		}
		services = append(services, &svc)
	}
	return services, nil
}

func (s *catalogStore) SetServiceActive(ctx context.Context, serviceID string, active bool) error {
	_, err := s.services().Doc(serviceID).Update(ctx, []firestore.Update{
		{Path: "isActive", Value: active},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errs.NewNotFoundError("service not found")
		}
		return errs.NewDatabaseError("update", "failed to update service", err)
	}
	return nil
}

func (s *catalogStore) ListCategories(ctx context.Context) ([]*models.Category, error) {
	docs, err := s.categories().OrderBy("name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list categories", err)
	}
	categories := make([]*models.Category, 0, len(docs))
	for _, d := range docs {
		var c models.Category
		if err := d.DataTo(&c); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse category data", err)
		}
		categories = append(categories, &c)
	}
	return categories, nil
}

func (s *catalogStore) GetCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	doc, err := s.categories().Doc(categoryID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("category not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get category", err)
	}
	var c models.Category
	if err := doc.DataTo(&c); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse category data", err)
	}
	return &c, nil
}
