package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"termguard/internal/models"
)

func testRun(campaignID uuid.UUID) *models.RunSummary {
	started := time.Now().UTC().Truncate(time.Millisecond)
	return &models.RunSummary{
		ID:            uuid.New(),
		LabelName:     "auto-negatives",
		Status:        models.RunCompleted,
		StartedAt:     started,
		FinishedAt:    started.Add(3 * time.Second),
		CampaignsSeen: 1,
		NewExclusions: 2,
		Cap:           25,
		Scopes: []models.ScopeStats{
			{
				CampaignID:      campaignID,
				CampaignName:    "Summer Tours",
				TotalTerms:      10,
				Kept:            4,
				BlockCandidates: 3,
				Uncertain:       3,
				NewExclusions:   2,
			},
		},
	}
}

func TestInsertAndGetRun(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	campaign := createTestCampaign(t, db, "Summer Tours")
	run := testRun(campaign.ID)

	if err := db.InsertRun(ctx, run); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	got, err := db.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun() error = %v", err)
	}

	if got.LabelName != run.LabelName || got.NewExclusions != run.NewExclusions ||
		got.Cap != run.Cap || got.CapReached != run.CapReached {
		t.Errorf("GetRun() = %+v, want %+v", got, run)
	}
	if len(got.Scopes) != 1 {
		t.Fatalf("GetRun() returned %d scope rows, want 1", len(got.Scopes))
	}
	if got.Scopes[0] != run.Scopes[0] {
		t.Errorf("GetRun() scope stats = %+v, want %+v", got.Scopes[0], run.Scopes[0])
	}
}

func TestGetRun_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := db.GetRun(context.Background(), uuid.New())
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("GetRun() error = %v, want ErrRunNotFound", err)
	}
}

func TestListRuns(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	campaign := createTestCampaign(t, db, "Summer Tours")

	first := testRun(campaign.ID)
	second := testRun(campaign.ID)
	second.StartedAt = first.StartedAt.Add(time.Minute)
	second.FinishedAt = second.StartedAt.Add(time.Second)

	if err := db.InsertRun(ctx, first); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}
	if err := db.InsertRun(ctx, second); err != nil {
		t.Fatalf("InsertRun() error = %v", err)
	}

	runs, err := db.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns() returned %d runs, want 2", len(runs))
	}
	// Newest first.
	if runs[0].ID != second.ID {
		t.Errorf("ListRuns()[0] = %s, want most recent run %s", runs[0].ID, second.ID)
	}

	limited, err := db.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("ListRuns(limit=1) returned %d runs, want 1", len(limited))
	}
}
