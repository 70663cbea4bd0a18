package dto

import "github.com/bancotempo/timebank-backend/internal/models"

type CreateServiceRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	CategoryID   string   `json:"categoryId,omitempty"`
	TimeRate     float64  `json:"timeRate"`
	Location     string   `json:"location,omitempty"`
	Availability string   `json:"availability,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// ServiceQuery mirrors the catalog page filters: free-text search over
// title/description/tags plus category and zone narrowing. Only active
// listings are ever returned.
type ServiceQuery struct {
	Search     string
	CategoryID string
	Zone       string
	Limit      int
}

// ServiceDetail is a listing joined with its provider's public profile,
// the shape the service page renders.
type ServiceDetail struct {
	models.Service
	Provider *PublicProfile   `json:"provider,omitempty"`
	Category *models.Category `json:"category,omitempty"`
}
