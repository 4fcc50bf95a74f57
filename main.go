package main

import (
	"log"

	"github.com/joho/godotenv"

	"statlab/adapters/api"
	"statlab/adapters/ingest"
	"statlab/app"
	"statlab/internal/config"
	"statlab/internal/distributions"
	"statlab/ui"
)

func main() {
	// Load .env file if present (ignore error - env vars may be set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	reader := ingest.NewDataReader(cfg.Data.File)
	table, err := reader.Load()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	service := app.NewAnalysisService(table, distributions.New(), cfg.Data.MaxConcurrent)

	if cfg.Report.Enabled {
		reportApp := ui.NewApp(service)
		go func() {
			log.Printf("Report server listening on :%s", cfg.Report.Port)
			if err := reportApp.Start(":" + cfg.Report.Port); err != nil {
				log.Fatalf("Report server failed: %v", err)
			}
		}()
	}

	server := api.NewServer(service)
	log.Printf("API server listening on :%s", cfg.Server.Port)
	if err := server.Start(":" + cfg.Server.Port); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
}
