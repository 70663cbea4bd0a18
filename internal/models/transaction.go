package models

import (
	"time"
)

const TransactionTypeServicePayment = "service_payment"

// Transaction is the finalized record of time moving between two members,
// written once by the atomic complete-request operation. A copy lives under
// each participant's transactions subcollection, keyed by the same id.
type Transaction struct {
	TransactionID    string    `firestore:"transactionId" json:"transactionId"`
	ServiceRequestID string    `firestore:"serviceRequestId" json:"serviceRequestId"`
	FromUserID       string    `firestore:"fromUserId" json:"fromUserId"`
	ToUserID         string    `firestore:"toUserId" json:"toUserId"`
	TimeAmount       float64   `firestore:"timeAmount" json:"timeAmount"`
	Type             string    `firestore:"type" json:"type"`
	Description      string    `firestore:"description" json:"description"`
	CreatedAt        time.Time `firestore:"createdAt" json:"createdAt"`
}
