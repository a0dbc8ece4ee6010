package main

// Seed the feedback_records table from the historical corpus CSV:
//   go run ./cmd/seed -file event_feedback_dataset.csv

import (
	"context"
	"flag"
	"log"
	"os"

	"campus-backend/internal/feedback"
	"campus-backend/internal/shared/config"
	"campus-backend/internal/shared/storage/db"
)

func main() {
	file := flag.String("file", "", "path to the feedback CSV (defaults to DATASET_PATH)")
	flag.Parse()

	cfg := config.Load()
	path := *file
	if path == "" {
		path = cfg.DatasetPath
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("failed to open dataset: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := feedback.ReadCSV(f)
	if err != nil {
		log.Printf("failed to parse dataset: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}

	store := &feedback.PGStore{DB: sqlDB}
	if err := store.InsertBatch(ctx, records); err != nil {
		log.Printf("failed to insert records: %v", err)
		os.Exit(1)
	}
	log.Printf("seeded %d feedback records from %s", len(records), path)
}
