package models

import "github.com/google/uuid"

// SearchTermRow is one observed search query for a campaign, as reported by
// the upstream search-term report for the prior-day window. Traffic metadata
// is carried through for reporting only; classification looks at Query alone.
type SearchTermRow struct {
	CampaignID   uuid.UUID `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	Query        string    `json:"query"`
	Impressions  int64     `json:"impressions"`
	Clicks       int64     `json:"clicks"`
	Conversions  int64     `json:"conversions"`
	CostMicros   int64     `json:"cost_micros"`
}
