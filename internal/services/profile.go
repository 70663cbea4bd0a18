package services

import (
	"context"

	"github.com/bancotempo/timebank-backend/internal/crypto"
	"github.com/bancotempo/timebank-backend/internal/dto"
	"github.com/bancotempo/timebank-backend/internal/errs"
	"github.com/bancotempo/timebank-backend/internal/models"
	"github.com/bancotempo/timebank-backend/pkg/cpf"
	"github.com/bancotempo/timebank-backend/pkg/logger"
)

// initialTimeBalance is the credit every new member starts with.
const initialTimeBalance = 15.0

type profilePSStore interface {
	Create(ctx context.Context, p *models.Profile) error
	Get(ctx context.Context, uid string) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
	Delete(ctx context.Context, uid string) error
}

type profileService struct {
	store  profilePSStore
	cipher crypto.Cipher
}

func NewProfileService(store profilePSStore, cipher crypto.Cipher) *profileService {
	return &profileService{store: store, cipher: cipher}
}

// Register creates the profile for a freshly verified Firebase UID. CPF and
// phone are encrypted before they reach the store.
func (s *profileService) Register(ctx context.Context, uid string, req dto.RegisterProfileRequest) (*dto.ProfileResponse, error) {
	log := logger.FromContext(ctx)

	if req.Name == "" {
		return nil, errs.NewValidationError("name is required")
	}
	role, err := parseRole(req.Role)
	if err != nil {
		return nil, err
	}
	if req.CPF != "" && !cpf.Valid(req.CPF) {
		return nil, errs.NewValidationError("invalid CPF")
	}

	p := &models.Profile{
		UID:         uid,
		Name:        req.Name,
		Zone:        req.Zone,
		Role:        role,
		TimeBalance: initialTimeBalance,
	}
	if req.CPF != "" {
		p.CPF, err = s.cipher.Encrypt(ctx, cpf.Normalize(req.CPF))
		if err != nil {
			return nil, err
		}
	}
	if req.Phone != "" {
		p.Phone, err = s.cipher.Encrypt(ctx, req.Phone)
		if err != nil {
			return nil, err
		}
	}

	if err := s.store.Create(ctx, p); err != nil {
		log.Error("failed to create profile in store", "error", err)
		return nil, err
	}

	log.Info("profile registered", "name", req.Name, "role", role)
	return s.toResponse(ctx, p)
}

func (s *profileService) Get(ctx context.Context, uid string) (*dto.ProfileResponse, error) {
	p, err := s.store.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, p)
}

// GetPublic returns the fields other members may see.
func (s *profileService) GetPublic(ctx context.Context, uid string) (*dto.PublicProfile, error) {
	p, err := s.store.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &dto.PublicProfile{
		UID:             p.UID,
		Name:            p.Name,
		AvatarURL:       p.AvatarURL,
		Zone:            p.Zone,
		TimeBalance:     p.TimeBalance,
		ExperienceHours: p.ExperienceHours,
	}, nil
}

func (s *profileService) Update(ctx context.Context, uid string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	p, err := s.store.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, errs.NewValidationError("name cannot be empty")
		}
		p.Name = *req.Name
	}
	if req.AvatarURL != nil {
		p.AvatarURL = *req.AvatarURL
	}
	if req.Zone != nil {
		p.Zone = *req.Zone
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			p.Phone = ""
		} else {
			p.Phone, err = s.cipher.Encrypt(ctx, *req.Phone)
			if err != nil {
				return nil, err
			}
		}
	}

	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, p)
}

// Delete removes the profile row. Deleting the Firebase account itself
// needs admin privileges and stays outside this service.
func (s *profileService) Delete(ctx context.Context, uid string) error {
	if _, err := s.store.Get(ctx, uid); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, uid); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Info("profile deleted")
	return nil
}

func (s *profileService) toResponse(ctx context.Context, p *models.Profile) (*dto.ProfileResponse, error) {
	resp := &dto.ProfileResponse{
		UID:             p.UID,
		Name:            p.Name,
		AvatarURL:       p.AvatarURL,
		TimeBalance:     p.TimeBalance,
		Zone:            p.Zone,
		Role:            p.Role,
		ExperienceHours: p.ExperienceHours,
	}
	if p.CPF != "" {
		plain, err := s.cipher.Decrypt(ctx, p.CPF)
		if err != nil {
			return nil, err
		}
		resp.MaskedCPF = cpf.Mask(plain)
	}
	if p.Phone != "" {
		plain, err := s.cipher.Decrypt(ctx, p.Phone)
		if err != nil {
			return nil, err
		}
		resp.Phone = plain
	}
	return resp, nil
}

func parseRole(role string) (models.Role, error) {
	switch role {
	case "", string(models.RoleStandard):
		return models.RoleStandard, nil
	case string(models.RoleOrganization):
		return models.RoleOrganization, nil
	case string(models.RoleAdmin):
		return models.RoleAdmin, nil
	}
	return "", errs.NewValidationError("unknown role: " + role)
}
