package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daybreak-app/daybreak/internal/config"
	"github.com/daybreak-app/daybreak/internal/database"
	"github.com/daybreak-app/daybreak/internal/repository"
	"github.com/daybreak-app/daybreak/internal/triage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DatabaseURI == "" {
		log.Fatal("DATABASE_URI is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	db, err := database.New(ctx, cfg.DatabaseURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to database")

	// Run migrations
	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Start the triage worker (optional, needs an AI key)
	if cfg.AIAPIKey != "" {
		client := triage.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
		journalRepo := repository.NewJournalRepository(db)
		worker := triage.NewWorker(client, journalRepo, time.Duration(cfg.TriageIntervalMinute)*time.Minute)
		go worker.Start(ctx)
		log.Printf("Triage worker enabled (model: %s)", cfg.AIModel)
	} else {
		log.Println("AI client not configured, journal triage disabled")
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutting down...")
}
