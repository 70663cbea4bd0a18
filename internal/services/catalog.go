package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/models"
	"github.com/bancotempo/timebank-backend/pkg/logger"
)

type catalogCSStore interface {
	CreateService(ctx context.Context, svc *models.Service) error
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	ListActive(ctx context.Context, categoryID string, limit int) ([]*models.Service, error)
	SetServiceActive(ctx context.Context, serviceID string, active bool) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*models.Category, error)
}

type profileCSService interface {
	GetPublic(ctx context.Context, uid string) (*dto.PublicProfile, error)
}

type catalogService struct {
	store    catalogCSStore
	profiles profileCSService
}

func NewCatalogService(store catalogCSStore, profiles profileCSService) *catalogService {
	return &catalogService{store: store, profiles: profiles}
}

func (s *catalogService) CreateService(ctx context.Context, uid string, req dto.CreateServiceRequest) (*models.Service, error) {
	if req.Title == "" {
		return nil, errs.NewValidationError("title is required")
	}
	if req.Description == "" {
		return nil, errs.NewValidationError("description is required")
	}
	if req.TimeRate <= 0 {
		return nil, errs.NewValidationError("timeRate must be positive")
	}
	if req.CategoryID != "" {
		if _, err := s.store.GetCategory(ctx, req.CategoryID); err != nil {
			return nil, err
		}
	}

	svc := &models.Service{
		ServiceID:    uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		ProviderID:   uid,
		TimeRate:     req.TimeRate,
		Location:     req.Location,
		Availability: req.Availability,
		Tags:         req.Tags,
		IsActive:     true,
	}
	if err := s.store.CreateService(ctx, svc); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("service created", "service_id", svc.ServiceID, "title", svc.Title)
	return svc, nil
}

// ListServices applies the catalog page filters. Category narrowing happens
// in the store query; free-text and zone matching are applied here, the way
// the original page filtered client-side.
func (s *catalogService) ListServices(ctx context.Context, q dto.ServiceQuery) ([]*models.Service, error) {
	services, err := s.store.ListActive(ctx, q.CategoryID, q.Limit)
	if err != nil {
		return nil, err
	}

	if q.Search == "" && q.Zone == "" {
		return services, nil
	}

	search := strings.ToLower(q.Search)
	filtered := make([]*models.Service, 0, len(services))
	for _, svc := range services {
		if q.Zone != "" && !strings.EqualFold(svc.Location, q.Zone) {
			continue
		}
		if search != "" && !matchesSearch(svc, search) {
			continue
		}
		filtered = append(filtered, svc)
	}
	return filtered, nil
}

func (s *catalogService) GetServiceDetail(ctx context.Context, serviceID string) (*dto.ServiceDetail, error) {
	svc, err := s.store.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	detail := &dto.ServiceDetail{Service: *svc}

	provider, err := s.profiles.GetPublic(ctx, svc.ProviderID)
	if err == nil {
		detail.Provider = provider
	} else if _, ok := err.(*errs.NotFoundError); !ok {
		return nil, err
	}

	if svc.CategoryID != "" {
		category, err := s.store.GetCategory(ctx, svc.CategoryID)
		if err == nil {
			detail.Category = category
		} else if _, ok := err.(*errs.NotFoundError); !ok {
			return nil, err
		}
	}
	return detail, nil
}

// DeactivateService unlists a service. Only the owner may do it; listings
// are never deleted so past requests keep their reference.
func (s *catalogService) DeactivateService(ctx context.Context, uid, serviceID string) error {
	svc, err := s.store.GetService(ctx, serviceID)
	if err != nil {
		return err
	}
	if svc.ProviderID != uid {
		return errs.NewAuthError("only the provider can deactivate a service")
	}
	return s.store.SetServiceActive(ctx, serviceID, false)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.store.ListCategories(ctx)
}

func matchesSearch(svc *models.Service, search string) bool {
	if strings.Contains(strings.ToLower(svc.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(svc.Description), search) {
		return true
	}
	for _, tag := range svc.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}
