package dto

import "time"

const (
	DirectionEarned = "earned"
	DirectionSpent  = "spent"
)

// TransactionView is a transaction row oriented relative to the caller:
// earned when time flowed to them, spent when it flowed away.
type TransactionView struct {
	TransactionID    string    `json:"transactionId"`
	ServiceRequestID string    `json:"serviceRequestId"`
	CounterpartyID   string    `json:"counterpartyId"`
	Direction        string    `json:"direction"`
	TimeAmount       float64   `json:"timeAmount"`
	Description      string    `json:"description"`
	CreatedAt        time.Time `json:"createdAt"`
}

type TransactionHistory struct {
	Transactions   []TransactionView `json:"transactions"`
	CurrentBalance float64           `json:"currentBalance"`
}
