package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, "2023-10", cfg.Shopify.APIVersion)
	assert.Equal(t, "https", cfg.Shopify.Protocol)
	assert.Equal(t, 100, cfg.Shopify.PageLimit)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestShopifyConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.ShopifyConfigured())

	cfg.Shopify.Password = "shppa_token"
	assert.False(t, cfg.ShopifyConfigured())

	cfg.Shopify.Domain = "my-store"
	assert.True(t, cfg.ShopifyConfigured())
}

func TestGoogleAdsConfiguredNeedsFullGroup(t *testing.T) {
	cfg := &Config{GoogleAds: GoogleAdsConfig{
		DeveloperToken: "dev",
		ClientID:       "id",
		ClientSecret:   "secret",
		RefreshToken:   "refresh",
	}}
	// Missing customer id keeps the integration off.
	assert.False(t, cfg.GoogleAdsConfigured())

	cfg.GoogleAds.CustomerID = "4445556666"
	assert.True(t, cfg.GoogleAdsConfigured())

	// Login customer id is optional: only needed for manager accounts.
	assert.Empty(t, cfg.GoogleAds.LoginCustomerID)
}

func TestOptionalIntegrationToggles(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.ReportsConfigured())
	assert.False(t, cfg.EventsConfigured())

	cfg.DatabaseURL = "sqlite://store.db"
	cfg.KafkaBrokers = "localhost:9092"
	assert.True(t, cfg.ReportsConfigured())
	assert.True(t, cfg.EventsConfigured())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SHOPIFY_PASSWORD", "shppa_token")
	t.Setenv("STORE_DOMAIN", "my-store.myshopify.com")
	t.Setenv("SHOPIFY_PAGE_LIMIT", "50")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.ShopifyConfigured())
	assert.Equal(t, "my-store.myshopify.com", cfg.Shopify.Domain)
	assert.Equal(t, 50, cfg.Shopify.PageLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestGetEnvAsIntIgnoresGarbage(t *testing.T) {
	t.Setenv("SHOPIFY_PAGE_LIMIT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Shopify.PageLimit)
}
