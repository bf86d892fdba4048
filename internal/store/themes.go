package store

import (
	"fmt"

	goshopify "github.com/bold-commerce/go-shopify/v3"
)

// ListThemes returns every theme installed on the store.
func (c *Client) ListThemes() ([]goshopify.Theme, error) {
	themes, err := c.theme.List(nil)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return themes, nil
}

// ActiveTheme returns the theme currently published on the storefront.
func (c *Client) ActiveTheme() (*goshopify.Theme, error) {
	themes, err := c.ListThemes()
	if err != nil {
		return nil, err
	}
	for i := range themes {
		if themes[i].Role == "main" {
			return &themes[i], nil
		}
	}
	return nil, ErrNotFound
}

// ListAssets returns the asset index of a theme.
func (c *Client) ListAssets(themeID int64) ([]goshopify.Asset, error) {
	assets, err := c.asset.List(themeID, nil)
	if err != nil {
		return nil, fmt.Errorf("list assets for theme %d: %w", themeID, err)
	}
	return assets, nil
}

// GetAsset fetches a single theme asset by key, e.g. "templates/index.liquid".
func (c *Client) GetAsset(themeID int64, key string) (*goshopify.Asset, error) {
	asset, err := c.asset.Get(themeID, key)
	if err != nil {
		return nil, fmt.Errorf("get asset %q of theme %d: %w", key, themeID, err)
	}
	if asset == nil {
		return nil, ErrNotFound
	}
	return asset, nil
}

// UpdateAsset replaces the value of a theme asset, creating it if absent.
func (c *Client) UpdateAsset(themeID int64, key, value string) (*goshopify.Asset, error) {
	asset, err := c.asset.Update(themeID, goshopify.Asset{
		ThemeID: themeID,
		Key:     key,
		Value:   value,
	})
	if err != nil {
		return nil, fmt.Errorf("update asset %q of theme %d: %w", key, themeID, err)
	}
	c.logger.Info("Updated asset %q of theme %d", key, themeID)
	return asset, nil
}

// DeleteAsset removes a theme asset.
func (c *Client) DeleteAsset(themeID int64, key string) error {
	if err := c.asset.Delete(themeID, key); err != nil {
		return fmt.Errorf("delete asset %q of theme %d: %w", key, themeID, err)
	}
	c.logger.Info("Deleted asset %q of theme %d", key, themeID)
	return nil
}
