package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign status constants
const (
	CampaignEnabled = "enabled"
	CampaignPaused  = "paused"
	CampaignRemoved = "removed"
)

// Campaign represents an ad campaign under policy management.
type Campaign struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Label represents a policy label that marks participating campaigns.
type Label struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
