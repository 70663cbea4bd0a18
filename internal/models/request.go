package models

import (
	"time"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestCompleted RequestStatus = "completed"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestCompleted, RequestRejected, RequestCancelled:
		return true
	}
	return false
}

// ServiceRequest is a requester's proposal to buy RequestedHours of a
// service. TotalTimeCost is quoted at creation (hours × rate) and never
// recomputed afterwards.
type ServiceRequest struct {
	RequestID      string        `firestore:"requestId" json:"requestId"`
	ServiceID      string        `firestore:"serviceId" json:"serviceId"`
	RequesterID    string        `firestore:"requesterId" json:"requesterId"`
	ProviderID     string        `firestore:"providerId" json:"providerId"`
	Description    string        `firestore:"description" json:"description,omitempty"`
	RequestedHours float64       `firestore:"requestedHours" json:"requestedHours"`
	TotalTimeCost  float64       `firestore:"totalTimeCost" json:"totalTimeCost"`
	ScheduledDate  string        `firestore:"scheduledDate" json:"scheduledDate,omitempty"` // YYYY-MM-DD
	Status         RequestStatus `firestore:"status" json:"status"`
	CreatedAt      time.Time     `firestore:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `firestore:"updatedAt" json:"updatedAt"`
}
