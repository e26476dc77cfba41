package models

import (
	"time"

	"github.com/google/uuid"
)

// Run status constants
const (
	RunCompleted = "completed"
	RunNothing   = "nothing_to_do"
)

// ScopeStats holds the per-campaign counters accumulated during a run.
type ScopeStats struct {
	CampaignID      uuid.UUID `json:"campaign_id"`
	CampaignName    string    `json:"campaign_name"`
	TotalTerms      int       `json:"total_terms"`
	Kept            int       `json:"kept"`
	BlockCandidates int       `json:"block_candidates"`
	Uncertain       int       `json:"uncertain"`
	NewExclusions   int       `json:"new_exclusions"`
}

// RunSummary is the persisted, human-reportable outcome of one
// reconciliation run.
type RunSummary struct {
	ID                  uuid.UUID    `json:"id"`
	LabelName           string       `json:"label_name"`
	Status              string       `json:"status"`
	StartedAt           time.Time    `json:"started_at"`
	FinishedAt          time.Time    `json:"finished_at"`
	CampaignsSeen       int          `json:"campaigns_seen"`
	NewExclusions       int          `json:"new_exclusions"`
	Cap                 int          `json:"cap"`
	CapReached          bool         `json:"cap_reached"`
	SkippedUnknownScope int          `json:"skipped_unknown_scope"`
	Scopes              []ScopeStats `json:"scopes"`
}

// TotalTerms sums the per-scope total-term counters.
func (r *RunSummary) TotalTerms() int {
	total := 0
	for _, s := range r.Scopes {
		total += s.TotalTerms
	}
	return total
}
