package server

import (
	"context"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"termguard/internal/db"
	"termguard/internal/handlers/api"
	"termguard/internal/jobs"
	"termguard/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, reconciler *jobs.Reconciler) error {
	authMiddleware, err := middleware.NewAuthMiddleware(ctx, s.Cfg.OIDCIssuer, s.Cfg.OIDCClientID)
	if err != nil {
		return err
	}

	runHandler := api.NewRunHandler(database, reconciler)
	healthHandler := api.NewHealthHandler(database)

	// Health and metrics
	s.App.Get("/healthz", healthHandler.Live)
	s.App.Get("/readyz", healthHandler.Ready)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Run API - triggered by the external scheduler, inspected by operators
	s.App.Post("/api/runs", authMiddleware.RequireAuth, runHandler.Trigger)
	s.App.Get("/api/runs", authMiddleware.RequireAuth, runHandler.List)
	s.App.Get("/api/runs/:id", authMiddleware.RequireAuth, runHandler.Get)

	return nil
}
