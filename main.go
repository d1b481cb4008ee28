package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/blast-campaigns/internal/bundle"
	"github.com/mauv0809/blast-campaigns/internal/campaign"
	"github.com/mauv0809/blast-campaigns/internal/config"
	"github.com/mauv0809/blast-campaigns/internal/database"
	server "github.com/mauv0809/blast-campaigns/internal/http"
	"github.com/mauv0809/blast-campaigns/internal/metrics"
	"github.com/mauv0809/blast-campaigns/internal/notifier/slack"
	"github.com/mauv0809/blast-campaigns/internal/player"
	"github.com/mauv0809/blast-campaigns/internal/schema"
	"github.com/mauv0809/blast-campaigns/internal/team"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	catalog, err := schema.LoadCatalog(cfg.SchemaAliasesFile)
	if err != nil {
		log.Fatalf("Failed to load schema aliases: %s", err)
	}
	bunDB := database.NewBunDB(db)
	mapper := schema.NewMapper(bunDB, catalog)

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	campaignStore := campaign.New(bunDB, mapper)
	assembler := bundle.NewAssembler(campaignStore, cfg.DefaultEventID, cfg.OverviewWorkers, metricsSvc)
	defer assembler.Close()

	s := server.NewServer(
		assembler,
		team.New(bunDB, mapper),
		player.New(bunDB, mapper),
		slack.NewNotifier(),
		metricsSvc,
		metricsHandler,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds(), "default_event", cfg.DefaultEventID)

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
