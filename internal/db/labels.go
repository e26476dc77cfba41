package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"termguard/internal/models"
)

// EnsureLabel returns the label with the given name, creating it if it does
// not exist yet. Idempotent get-or-create.
func (d *DB) EnsureLabel(ctx context.Context, name string) (*models.Label, error) {
	query := `
		INSERT INTO labels (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at
	`

	var label models.Label
	err := d.Pool.QueryRow(ctx, query, name).Scan(&label.ID, &label.Name, &label.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &label, nil
}

// GetLabelByName retrieves a label by name.
func (d *DB) GetLabelByName(ctx context.Context, name string) (*models.Label, error) {
	query := `SELECT id, name, created_at FROM labels WHERE name = $1`

	var label models.Label
	err := d.Pool.QueryRow(ctx, query, name).Scan(&label.ID, &label.Name, &label.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLabelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &label, nil
}

// AttachLabel links a campaign to a label. Idempotent.
func (d *DB) AttachLabel(ctx context.Context, campaignID, labelID uuid.UUID) error {
	query := `
		INSERT INTO campaign_labels (campaign_id, label_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	_, err := d.Pool.Exec(ctx, query, campaignID, labelID)
	return err
}

// CreateCampaign creates a campaign.
func (d *DB) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	status := campaign.Status
	if status == "" {
		status = models.CampaignEnabled
	}

	query := `
		INSERT INTO campaigns (name, status)
		VALUES ($1, $2)
		RETURNING id, status, created_at
	`
	return d.Pool.QueryRow(ctx, query, campaign.Name, status).Scan(
		&campaign.ID, &campaign.Status, &campaign.CreatedAt,
	)
}

// GetCampaignByID retrieves a campaign by ID.
func (d *DB) GetCampaignByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	query := `SELECT id, name, status, created_at FROM campaigns WHERE id = $1`

	var campaign models.Campaign
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&campaign.ID, &campaign.Name, &campaign.Status, &campaign.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// ListCampaignsWithLabel returns campaigns carrying the named label, filtered
// by status. An empty status returns campaigns in any status.
func (d *DB) ListCampaignsWithLabel(ctx context.Context, labelName, status string) ([]models.Campaign, error) {
	query := `
		SELECT c.id, c.name, c.status, c.created_at
		FROM campaigns c
		JOIN campaign_labels cl ON cl.campaign_id = c.id
		JOIN labels l ON l.id = cl.label_id
		WHERE l.name = $1 AND ($2 = '' OR c.status = $2)
		ORDER BY c.name ASC
	`

	rows, err := d.Pool.Query(ctx, query, labelName, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}
