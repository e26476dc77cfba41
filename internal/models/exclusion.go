package models

import (
	"time"

	"github.com/google/uuid"
)

// Negative keyword match type constants. Only exact-match negatives are
// created or read by the reconciler; broader match types belong to humans.
const (
	MatchTypeExact  = "exact"
	MatchTypePhrase = "phrase"
	MatchTypeBroad  = "broad"
)

// NegativeKeyword represents a stored campaign-level negative keyword.
type NegativeKeyword struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	Term       string    `json:"term"`
	MatchType  string    `json:"match_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// ExclusionAction is one exact-match negative keyword the reconciliation
// engine decided to create.
type ExclusionAction struct {
	CampaignID   uuid.UUID `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	Term         string    `json:"term"`
}
