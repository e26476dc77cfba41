package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"termguard/internal/models"
)

// InsertRun persists a run summary and its per-scope statistics in one
// transaction.
func (d *DB) InsertRun(ctx context.Context, run *models.RunSummary) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO runs (id, label_name, status, started_at, finished_at,
			campaigns_seen, new_exclusions, cap, cap_reached, skipped_unknown_scope)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, run.ID, run.LabelName, run.Status, run.StartedAt, run.FinishedAt,
		run.CampaignsSeen, run.NewExclusions, run.Cap, run.CapReached, run.SkippedUnknownScope)
	if err != nil {
		return err
	}

	for _, s := range run.Scopes {
		_, err = tx.Exec(ctx, `
			INSERT INTO run_scope_stats (run_id, campaign_id, campaign_name,
				total_terms, kept, block_candidates, uncertain, new_exclusions)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, run.ID, s.CampaignID, s.CampaignName,
			s.TotalTerms, s.Kept, s.BlockCandidates, s.Uncertain, s.NewExclusions)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetRun retrieves a run summary with its per-scope statistics.
func (d *DB) GetRun(ctx context.Context, id uuid.UUID) (*models.RunSummary, error) {
	var run models.RunSummary
	err := d.Pool.QueryRow(ctx, `
		SELECT id, label_name, status, started_at, finished_at,
			campaigns_seen, new_exclusions, cap, cap_reached, skipped_unknown_scope
		FROM runs WHERE id = $1
	`, id).Scan(&run.ID, &run.LabelName, &run.Status, &run.StartedAt, &run.FinishedAt,
		&run.CampaignsSeen, &run.NewExclusions, &run.Cap, &run.CapReached, &run.SkippedUnknownScope)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := d.Pool.Query(ctx, `
		SELECT campaign_id, campaign_name, total_terms, kept, block_candidates,
			uncertain, new_exclusions
		FROM run_scope_stats WHERE run_id = $1
		ORDER BY campaign_name ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s models.ScopeStats
		if err := rows.Scan(&s.CampaignID, &s.CampaignName, &s.TotalTerms, &s.Kept,
			&s.BlockCandidates, &s.Uncertain, &s.NewExclusions); err != nil {
			return nil, err
		}
		run.Scopes = append(run.Scopes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &run, nil
}

// ListRuns returns the most recent run summaries, newest first, without
// per-scope statistics.
func (d *DB) ListRuns(ctx context.Context, limit int) ([]models.RunSummary, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, label_name, status, started_at, finished_at,
			campaigns_seen, new_exclusions, cap, cap_reached, skipped_unknown_scope
		FROM runs ORDER BY started_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.RunSummary
	for rows.Next() {
		var run models.RunSummary
		if err := rows.Scan(&run.ID, &run.LabelName, &run.Status, &run.StartedAt, &run.FinishedAt,
			&run.CampaignsSeen, &run.NewExclusions, &run.Cap, &run.CapReached, &run.SkippedUnknownScope); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
