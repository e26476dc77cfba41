// Package jobs drives reconciliation runs. A run is triggered externally
// (via the API); nothing in here schedules itself.
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"termguard/internal/config"
	"termguard/internal/db"
	"termguard/internal/ledger"
	"termguard/internal/metrics"
	"termguard/internal/models"
	"termguard/internal/policy"
	"termguard/internal/reconcile"
	"termguard/internal/report"
)

// Reconciler executes one reconciliation run end to end: enumerate labeled
// campaigns, seed the ledger from stored exclusions, stream yesterday's
// search-term report through the engine, persist the summary.
type Reconciler struct {
	db      *db.DB
	reports *report.Client
	policy  *config.PolicyConfig
}

// NewReconciler creates a run driver.
func NewReconciler(database *db.DB, reports *report.Client, policyCfg *config.PolicyConfig) *Reconciler {
	return &Reconciler{db: database, reports: reports, policy: policyCfg}
}

// Run executes a single reconciliation run and returns its summary. Any
// collaborator failure aborts the run; exclusions created before the failure
// remain valid and a rerun is safe because creation is idempotent.
func (r *Reconciler) Run(ctx context.Context) (*models.RunSummary, error) {
	started := time.Now().UTC()
	summary := &models.RunSummary{
		ID:        uuid.New(),
		LabelName: r.policy.LabelName,
		StartedAt: started,
		Cap:       r.policy.MaxNewExclusionsPerRun,
	}

	label, err := r.db.EnsureLabel(ctx, r.policy.LabelName)
	if err != nil {
		return nil, fmt.Errorf("label store: ensure %q: %w", r.policy.LabelName, err)
	}

	campaigns, err := r.db.ListCampaignsWithLabel(ctx, label.Name, models.CampaignEnabled)
	if err != nil {
		return nil, fmt.Errorf("label store: list campaigns for %q: %w", label.Name, err)
	}
	summary.CampaignsSeen = len(campaigns)

	if len(campaigns) == 0 {
		// Not an error: the label simply has no enabled campaigns yet.
		log.Printf("Reconciler: no enabled campaigns carry label %q, nothing to do", label.Name)
		summary.Status = models.RunNothing
		summary.FinishedAt = time.Now().UTC()
		if err := r.db.InsertRun(ctx, summary); err != nil {
			return nil, fmt.Errorf("run store: persist summary: %w", err)
		}
		metrics.RecordRun(summary)
		return summary, nil
	}

	scopes := make(map[uuid.UUID]string, len(campaigns))
	ids := make([]uuid.UUID, 0, len(campaigns))
	led := ledger.New()
	for _, c := range campaigns {
		existing, err := r.db.ListExactExclusions(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("exclusion store: list for campaign %s: %w", c.ID, err)
		}
		led.Load(c.ID, existing)
		scopes[c.ID] = c.Name
		ids = append(ids, c.ID)
	}

	reportDate := started.AddDate(0, 0, -1)
	stream, err := r.reports.SearchTerms(ctx, reportDate, ids)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	pol := policy.Policy{
		AllowTokens:      r.policy.AllowTokens,
		SuspiciousTokens: r.policy.SuspiciousTokens,
		BrandAllowlist:   r.policy.BrandAllowlist,
	}
	engine := reconcile.New(pol, led, r.db, r.policy.MaxNewExclusionsPerRun)

	res, err := engine.Run(ctx, scopes, stream)
	if err != nil {
		return nil, err
	}

	if res.SkippedUnknownScope > 0 {
		log.Printf("Reconciler: skipped %d report rows referencing unknown campaigns", res.SkippedUnknownScope)
	}

	summary.Status = models.RunCompleted
	summary.FinishedAt = time.Now().UTC()
	summary.NewExclusions = res.NewExclusions
	summary.CapReached = res.CapReached
	summary.SkippedUnknownScope = res.SkippedUnknownScope
	for _, c := range campaigns {
		if stats := res.Scopes[c.ID]; stats != nil {
			summary.Scopes = append(summary.Scopes, *stats)
		}
	}

	if err := r.db.InsertRun(ctx, summary); err != nil {
		return nil, fmt.Errorf("run store: persist summary: %w", err)
	}

	metrics.RecordRun(summary)
	logSummary(summary)
	return summary, nil
}

// logSummary writes the human-readable run report.
func logSummary(s *models.RunSummary) {
	log.Printf("Reconciler: run %s finished in %s: %d campaigns, %d/%d new exclusions (cap reached: %v)",
		s.ID, s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond),
		s.CampaignsSeen, s.NewExclusions, s.Cap, s.CapReached)
	for _, sc := range s.Scopes {
		log.Printf("Reconciler:   %s: %d terms (%d kept, %d block candidates, %d uncertain), %d new exclusions",
			sc.CampaignName, sc.TotalTerms, sc.Kept, sc.BlockCandidates, sc.Uncertain, sc.NewExclusions)
	}
}
