package api

import (
	"errors"
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"termguard/internal/db"
	"termguard/internal/jobs"
	"termguard/internal/models"
)

// RunHandler triggers reconciliation runs and serves run history.
type RunHandler struct {
	db         *db.DB
	reconciler *jobs.Reconciler
	mu         sync.Mutex
	running    bool
}

// NewRunHandler creates a new run handler.
func NewRunHandler(database *db.DB, reconciler *jobs.Reconciler) *RunHandler {
	return &RunHandler{db: database, reconciler: reconciler}
}

// Trigger starts a reconciliation run and responds with its summary once it
// finishes. Only one run may execute at a time; concurrent triggers get 409.
func (h *RunHandler) Trigger(c fiber.Ctx) error {
	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		return jsonError(c, fiber.StatusConflict, "a run is already in progress")
	}
	h.running = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.running = false
		h.mu.Unlock()
	}()

	summary, err := h.reconciler.Run(c.Context())
	if err != nil {
		log.Printf("Run failed: %v", err)
		return jsonError(c, fiber.StatusBadGateway, err.Error())
	}

	return jsonSuccess(c, summary)
}

// Get returns one run summary with per-campaign statistics.
func (h *RunHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid run id")
	}

	run, err := h.db.GetRun(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrRunNotFound) {
			return jsonError(c, fiber.StatusNotFound, "run not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch run")
	}

	return jsonSuccess(c, run)
}

// List returns recent run summaries, newest first.
func (h *RunHandler) List(c fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		return jsonError(c, fiber.StatusBadRequest, "limit must be between 1 and 100")
	}

	runs, err := h.db.ListRuns(c.Context(), limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch runs")
	}

	return jsonSuccess(c, models.RunListResponse{Runs: runs, Count: len(runs)})
}
