package main

import (
	"log"

	"storeops/internal/config"
	"storeops/internal/logger"
	"storeops/internal/reports"
	"storeops/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	if !cfg.EventsConfigured() {
		logger.Fatal("KAFKA_BROKERS must be set to run the audit worker")
	}

	// Optional reports database; without it events are only logged
	var reportStore *reports.Store
	if cfg.ReportsConfigured() {
		reportStore, err = reports.New(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to reports database: %v", err)
		}
		defer reportStore.Close()
	} else {
		logger.Info("DATABASE_URL not set, command events will not be persisted")
	}

	w := worker.New(cfg, logger, reportStore)
	defer w.Stop()

	w.Start()
}
