package main

import (
	"log"

	"storeops/internal/ads"
	"storeops/internal/analytics"
	"storeops/internal/api"
	"storeops/internal/config"
	"storeops/internal/events"
	"storeops/internal/logger"
	"storeops/internal/reports"
	"storeops/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// Optional reports database
	var reportStore *reports.Store
	if cfg.ReportsConfigured() {
		reportStore, err = reports.New(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to reports database: %v", err)
		}
		defer reportStore.Close()
	} else {
		logger.Info("DATABASE_URL not set, report snapshots disabled")
	}

	// Optional command-event publisher
	var publisher *events.Publisher
	if cfg.EventsConfigured() {
		publisher = events.NewPublisher(cfg.KafkaBrokers, logger)
		defer publisher.Close()
	} else {
		logger.Info("KAFKA_BROKERS not set, command auditing disabled")
	}

	// Store commands; missing credentials disable them rather than failing
	// startup.
	var storeClient *store.Client
	var analyticsService *analytics.Service
	if cfg.ShopifyConfigured() {
		storeClient, err = store.New(cfg.Shopify, logger)
		if err != nil {
			logger.Fatal("Failed to initialize store client: %v", err)
		}
		defer storeClient.Close()
		analyticsService = analytics.New(storeClient, reportStore, logger)
	}

	// Optional keyword suggestions
	var adsClient *ads.Client
	if cfg.GoogleAdsConfigured() {
		adsClient = ads.New(cfg.GoogleAds, logger)
	}

	// Initialize API server
	server := api.New(cfg, logger, storeClient, analyticsService, adsClient, publisher)

	// Start server
	logger.Info("Starting API server on port " + cfg.APIPort)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
