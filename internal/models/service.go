package models

import (
	"time"
)

// Service is a listed offer in the catalog. TimeRate is the hour cost for
// one requested hour of the service.
type Service struct {
	ServiceID    string    `firestore:"serviceId" json:"serviceId"`
	Title        string    `firestore:"title" json:"title"`
	Description  string    `firestore:"description" json:"description"`
	CategoryID   string    `firestore:"categoryId" json:"categoryId,omitempty"`
	ProviderID   string    `firestore:"providerId" json:"providerId"`
	TimeRate     float64   `firestore:"timeRate" json:"timeRate"`
	Location     string    `firestore:"location" json:"location,omitempty"`
	Availability string    `firestore:"availability" json:"availability,omitempty"`
	Tags         []string  `firestore:"tags" json:"tags,omitempty"`
	IsActive     bool      `firestore:"isActive" json:"isActive"`
	CreatedAt    time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type Category struct {
	CategoryID  string    `firestore:"categoryId" json:"categoryId"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description,omitempty"`
	Icon        string    `firestore:"icon" json:"icon,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}
