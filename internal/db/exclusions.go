package db

import (
	"context"

	"github.com/google/uuid"

	"termguard/internal/models"
	"termguard/internal/validation"
)

// ListExactExclusions returns the raw stored texts of a campaign's
// exact-match negative keywords, used to seed the ledger at run start.
func (d *DB) ListExactExclusions(ctx context.Context, campaignID uuid.UUID) ([]string, error) {
	query := `
		SELECT term FROM negative_keywords
		WHERE campaign_id = $1 AND match_type = $2
	`

	rows, err := d.Pool.Query(ctx, query, campaignID, models.MatchTypeExact)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}

// CreateExactExclusion stores an exact-match negative keyword for the
// campaign. The term is stored wrapped in the literal exact-match delimiters
// so it suppresses only the precise query text. Idempotent: an existing
// (campaign, term) pair is left untouched.
func (d *DB) CreateExactExclusion(ctx context.Context, campaignID uuid.UUID, term string) error {
	query := `
		INSERT INTO negative_keywords (campaign_id, term, match_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (campaign_id, term, match_type) DO NOTHING
	`
	_, err := d.Pool.Exec(ctx, query, campaignID, validation.ExactMatchTerm(term), models.MatchTypeExact)
	return err
}

// NegativeKeywordCount is a per-campaign total for metrics export.
type NegativeKeywordCount struct {
	CampaignID   uuid.UUID
	CampaignName string
	Count        int64
}

// CountNegativeKeywords returns per-campaign negative keyword totals.
func (d *DB) CountNegativeKeywords(ctx context.Context) ([]NegativeKeywordCount, error) {
	query := `
		SELECT c.id, c.name, COUNT(nk.id)
		FROM campaigns c
		JOIN negative_keywords nk ON nk.campaign_id = c.id
		GROUP BY c.id, c.name
	`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []NegativeKeywordCount
	for rows.Next() {
		var nc NegativeKeywordCount
		if err := rows.Scan(&nc.CampaignID, &nc.CampaignName, &nc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, nc)
	}
	return counts, rows.Err()
}
