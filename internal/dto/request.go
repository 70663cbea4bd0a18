package dto

import "github.com/bancotempo/timebank-backend/internal/models"

type CreateServiceRequestRequest struct {
	ServiceID      string  `json:"serviceId"`
	RequestedHours float64 `json:"requestedHours"`
	Description    string  `json:"description,omitempty"`
	ScheduledDate  string  `json:"scheduledDate,omitempty"` // YYYY-MM-DD
}

// RequestList splits the caller's requests the way the dashboard shows
// them: ones they received as a provider and ones they sent as a requester.
type RequestList struct {
	Received []*models.ServiceRequest `json:"received"`
	Sent     []*models.ServiceRequest `json:"sent"`
}

// CompleteRequestResult reports the outcome of the atomic transfer.
type CompleteRequestResult struct {
	Request     *models.ServiceRequest `json:"request"`
	Transaction *models.Transaction    `json:"transaction"`
}
