package store

import (
	"errors"
	"fmt"
	"strings"

	goshopify "github.com/bold-commerce/go-shopify/v3"

	"storeops/internal/config"
	"storeops/internal/logger"
)

// DefaultPageLimit is the page size used for cursor pagination. Shopify caps
// list endpoints at 250; the commands here page in chunks of 100.
const DefaultPageLimit = 100

var (
	ErrNotFound              = errors.New("store: resource not found")
	ErrInvalidCollectionType = errors.New("store: collection type must be 'custom' or 'smart'")
)

// Client is the single entry point for every store command. It owns the
// Shopify session: construct it once, pass it by reference, Close it when the
// process shuts down. Commands are synchronous and share no state with each
// other beyond the remote store.
type Client struct {
	product      goshopify.ProductService
	order        goshopify.OrderService
	customer     goshopify.CustomerService
	custom       goshopify.CustomCollectionService
	smart        goshopify.SmartCollectionService
	collect      goshopify.CollectService
	theme        goshopify.ThemeService
	asset        goshopify.AssetService
	priceRule    goshopify.PriceRuleService
	discountCode goshopify.DiscountCodeService

	logger    *logger.Logger
	pageLimit int
}

func New(cfg config.ShopifyConfig, log *logger.Logger) (*Client, error) {
	domain := normalizeDomain(cfg.Domain)
	if domain == "" {
		return nil, errors.New("store: STORE_DOMAIN is required")
	}
	if cfg.Password == "" {
		return nil, errors.New("store: SHOPIFY_PASSWORD is required")
	}
	if cfg.Protocol != "" && cfg.Protocol != "https" {
		return nil, fmt.Errorf("store: unsupported protocol %q, the admin API is https only", cfg.Protocol)
	}

	app := goshopify.App{
		ApiKey:   cfg.APIKey,
		Password: cfg.Password,
	}
	sh := goshopify.NewClient(app, domain, cfg.Password,
		goshopify.WithVersion(cfg.APIVersion),
	)

	limit := cfg.PageLimit
	if limit <= 0 || limit > 250 {
		limit = DefaultPageLimit
	}

	return &Client{
		product:      sh.Product,
		order:        sh.Order,
		customer:     sh.Customer,
		custom:       sh.CustomCollection,
		smart:        sh.SmartCollection,
		collect:      sh.Collect,
		theme:        sh.Theme,
		asset:        sh.Asset,
		priceRule:    sh.PriceRule,
		discountCode: sh.DiscountCode,
		logger:       log,
		pageLimit:    limit,
	}, nil
}

// Close releases the session. The REST transport keeps no per-session server
// state, so this exists to give the client an explicit open/close lifecycle.
func (c *Client) Close() error {
	c.product = nil
	c.order = nil
	c.customer = nil
	return nil
}

// normalizeDomain accepts "my-store", "my-store.myshopify.com" or a full URL
// and reduces it to the bare shop name the API client expects.
func normalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimSuffix(domain, "/")
	return strings.TrimSuffix(domain, ".myshopify.com")
}
