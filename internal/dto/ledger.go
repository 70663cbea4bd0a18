package dto

import "time"

// AddLedgerEntryRequest creates an entry in the local demo ledger. Service
// and provider fields are denormalized snapshots frozen at request time.
type AddLedgerEntryRequest struct {
	ID                string    `json:"id,omitempty"`
	ServiceTitle      string    `json:"serviceTitle"`
	ServiceCategory   string    `json:"serviceCategory"`
	ProviderName      string    `json:"providerName"`
	ProviderAvatarURL string    `json:"providerAvatarUrl,omitempty"`
	Hours             float64   `json:"hours"`
	Date              time.Time `json:"date,omitempty"`
	Type              string    `json:"type"` // earned | spent
}

type LedgerBalance struct {
	Balance float64 `json:"balance"`
}

type FavoriteState struct {
	ServiceID string `json:"serviceId"`
	Favorite  bool   `json:"favorite"`
}
