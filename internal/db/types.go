package db

import (
	"time"

	"github.com/google/uuid"
)

// Application is one tracked job application.
type Application struct {
	ID        uuid.UUID
	Company   string
	RoleTitle string
	Country   string
	Decision  string
	Status    string
	CreatedAt time.Time
}

// ContentVersion is one stored artifact revision.
type ContentVersion struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	Artifact      string
	Version       int
	Content       string
	CreatedAt     time.Time
}

// TrackingEvent is a lifecycle event on an application (applied, response,
// interview, rejection).
type TrackingEvent struct {
	ID            int64
	ApplicationID uuid.UUID
	EventType     string
	Notes         string
	CreatedAt     time.Time
}

// UsageTotals aggregates the llm_usage table.
type UsageTotals struct {
	Calls        int
	PromptTokens int64
	OutputTokens int64
	TotalTokens  int64
	CostUSD      float64
}
