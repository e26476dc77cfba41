// Package reconcile implements the reconciliation engine: it consumes one
// run's stream of search-term observations, classifies each term against the
// policy, and creates exact-match negative keywords for new block candidates,
// bounded by the per-run cap.
package reconcile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"termguard/internal/ledger"
	"termguard/internal/models"
	"termguard/internal/policy"
	"termguard/internal/validation"
)

// ObservationSource is a single-pass stream of search-term rows, in arrival
// order. Shaped after pgx.Rows so both the report client and slice-backed
// test sources satisfy it.
type ObservationSource interface {
	Next() bool
	Row() models.SearchTermRow
	Err() error
}

// Excluder is the write side of the exclusion store: it creates one
// exact-match negative keyword at the campaign level. Creation must be
// idempotent so a rerun after partial failure is safe.
type Excluder interface {
	CreateExactExclusion(ctx context.Context, campaignID uuid.UUID, term string) error
}

// Result holds the exclusion actions applied during a run plus the per-scope
// statistics, keyed by campaign.
type Result struct {
	Actions             []models.ExclusionAction
	Scopes              map[uuid.UUID]*models.ScopeStats
	NewExclusions       int
	CapReached          bool
	SkippedUnknownScope int
}

// Engine reconciles observed traffic against the intent policy. It is the
// only writer of the ledger and of its own statistics; observations are
// processed strictly one at a time.
type Engine struct {
	policy   policy.Policy
	ledger   *ledger.Ledger
	excluder Excluder
	cap      int
}

// New creates an engine for one run. cap bounds the number of new exclusions
// the run may create; the ledger must already be seeded with pre-existing
// exclusions.
func New(p policy.Policy, led *ledger.Ledger, excluder Excluder, cap int) *Engine {
	return &Engine{policy: p, ledger: led, excluder: excluder, cap: cap}
}

// Run consumes the observation stream until it ends or the cap is reached.
// scopes is the known campaign set (id to name); rows for unknown campaigns
// are skipped and counted, not fatal. A failed exclusion write aborts the run
// with the partial result discarded at this layer; exclusions already created
// remain valid because each write is independently idempotent.
func (e *Engine) Run(ctx context.Context, scopes map[uuid.UUID]string, src ObservationSource) (*Result, error) {
	res := &Result{Scopes: make(map[uuid.UUID]*models.ScopeStats)}

	// Once the cap is hit the rest of the stream is left unread; those
	// observations simply wait for the next run.
	for res.NewExclusions < e.cap && src.Next() {
		row := src.Row()

		name, known := scopes[row.CampaignID]
		if !known {
			res.SkippedUnknownScope++
			continue
		}

		stats := res.Scopes[row.CampaignID]
		if stats == nil {
			stats = &models.ScopeStats{CampaignID: row.CampaignID, CampaignName: name}
			res.Scopes[row.CampaignID] = stats
		}

		cls := policy.Classify(row.Query, e.policy)
		stats.TotalTerms++

		switch cls.Intent {
		case models.IntentKeep:
			stats.Kept++

		case models.IntentUncertain:
			// Left for manual review, never auto-excluded.
			stats.Uncertain++

		case models.IntentBlockCandidate:
			stats.BlockCandidates++

			key := validation.NormalizeTerm(row.Query)
			if e.ledger.Has(row.CampaignID, key) {
				continue
			}

			// Record first so a duplicate later in the stream is caught even
			// though the store write below is what makes it real.
			e.ledger.Record(row.CampaignID, key)
			if err := e.excluder.CreateExactExclusion(ctx, row.CampaignID, key); err != nil {
				return nil, fmt.Errorf("exclusion store: create %q for campaign %s: %w", key, row.CampaignID, err)
			}

			res.Actions = append(res.Actions, models.ExclusionAction{
				CampaignID:   row.CampaignID,
				CampaignName: name,
				Term:         key,
			})
			stats.NewExclusions++
			res.NewExclusions++
			if res.NewExclusions >= e.cap {
				res.CapReached = true
			}
		}
	}

	if err := src.Err(); err != nil {
		return nil, fmt.Errorf("report source: %w", err)
	}

	return res, nil
}
