package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"termguard/internal/config"
	"termguard/internal/db"
	"termguard/internal/jobs"
	"termguard/internal/metrics"
	"termguard/internal/report"
	"termguard/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	policyCfg, err := config.LoadPolicyConfig(cfg.PolicyFile)
	if err != nil {
		log.Fatalf("Failed to load policy: %v", err)
	}
	log.Printf("Policy loaded: label %q, cap %d, %d allow / %d suspicious / %d brand tokens",
		policyCfg.LabelName, policyCfg.MaxNewExclusionsPerRun,
		len(policyCfg.AllowTokens), len(policyCfg.SuspiciousTokens), len(policyCfg.BrandAllowlist))

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Metrics
	metrics.Init(database)

	// Upstream report client and run driver
	reports := report.NewClient(ctx, report.Config{
		BaseURL:      cfg.ReportBaseURL,
		ClientID:     cfg.ReportClientID,
		ClientSecret: cfg.ReportClientSecret,
		TokenURL:     cfg.ReportTokenURL,
		Timeout:      cfg.ReportTimeout,
	})
	reconciler := jobs.NewReconciler(database, reports, policyCfg)

	// HTTP server
	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, reconciler); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
