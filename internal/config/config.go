package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// API Configuration
	APIPort string
	APIHost string

	// Shopify store credentials
	Shopify ShopifyConfig

	// Google Ads keyword suggestions
	GoogleAds GoogleAdsConfig

	// Reports database (optional)
	DatabaseURL string

	// Kafka command-event pipeline (optional)
	KafkaBrokers string

	// Environment
	Env      string
	LogLevel string
}

type ShopifyConfig struct {
	APIKey     string
	Password   string
	Domain     string
	APIVersion string
	Protocol   string
	PageLimit  int
}

type GoogleAdsConfig struct {
	DeveloperToken  string
	ClientID        string
	ClientSecret    string
	RefreshToken    string
	LoginCustomerID string
	CustomerID      string
}

func Load() (*Config, error) {
	// Load .env file
	godotenv.Load()

	return &Config{
		APIPort: getEnv("API_PORT", "8080"),
		APIHost: getEnv("API_HOST", "0.0.0.0"),
		Shopify: ShopifyConfig{
			APIKey:     getEnv("SHOPIFY_API_KEY", ""),
			Password:   getEnv("SHOPIFY_PASSWORD", ""),
			Domain:     getEnv("STORE_DOMAIN", ""),
			APIVersion: getEnv("SHOPIFY_API_VERSION", "2023-10"),
			Protocol:   getEnv("STORE_PROTOCOL", "https"),
			PageLimit:  getEnvAsInt("SHOPIFY_PAGE_LIMIT", 100),
		},
		GoogleAds: GoogleAdsConfig{
			DeveloperToken:  getEnv("GOOGLE_ADS_DEVELOPER_TOKEN", ""),
			ClientID:        getEnv("GOOGLE_ADS_CLIENT_ID", ""),
			ClientSecret:    getEnv("GOOGLE_ADS_CLIENT_SECRET", ""),
			RefreshToken:    getEnv("GOOGLE_ADS_REFRESH_TOKEN", ""),
			LoginCustomerID: getEnv("GOOGLE_ADS_LOGIN_CUSTOMER_ID", ""),
			CustomerID:      getEnv("CLIENT_CUSTOMER_ID", ""),
		},
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		Env:          getEnv("ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}, nil
}

// ShopifyConfigured reports whether the store credential group is complete.
// A missing group disables the store commands instead of failing startup.
func (c *Config) ShopifyConfigured() bool {
	return c.Shopify.Password != "" && c.Shopify.Domain != ""
}

// GoogleAdsConfigured reports whether the keyword-suggestion credential group
// is complete.
func (c *Config) GoogleAdsConfigured() bool {
	g := c.GoogleAds
	return g.DeveloperToken != "" && g.ClientID != "" && g.ClientSecret != "" &&
		g.RefreshToken != "" && g.CustomerID != ""
}

func (c *Config) ReportsConfigured() bool {
	return c.DatabaseURL != ""
}

func (c *Config) EventsConfigured() bool {
	return c.KafkaBrokers != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
