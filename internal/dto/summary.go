package dto

// Summary backs the dashboard header cards.
type Summary struct {
	TimeBalance        float64 `json:"timeBalance"`
	PendingReceived    int     `json:"pendingReceived"`
	PendingSent        int     `json:"pendingSent"`
	CompletedExchanges int     `json:"completedExchanges"`
	ExperienceHours    float64 `json:"experienceHours"`
}
