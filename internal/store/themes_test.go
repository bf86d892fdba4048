package store

import (
	"testing"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeThemeService struct {
	goshopify.ThemeService

	themes []goshopify.Theme
}

func (f *fakeThemeService) List(options interface{}) ([]goshopify.Theme, error) {
	return f.themes, nil
}

type fakeAssetService struct {
	goshopify.AssetService

	assets  map[string]goshopify.Asset
	updated []goshopify.Asset
	deleted []string
}

func (f *fakeAssetService) List(themeID int64, options interface{}) ([]goshopify.Asset, error) {
	var all []goshopify.Asset
	for _, a := range f.assets {
		all = append(all, a)
	}
	return all, nil
}

func (f *fakeAssetService) Get(themeID int64, key string) (*goshopify.Asset, error) {
	if a, ok := f.assets[key]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeAssetService) Update(themeID int64, asset goshopify.Asset) (*goshopify.Asset, error) {
	f.updated = append(f.updated, asset)
	return &asset, nil
}

func (f *fakeAssetService) Delete(themeID int64, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func TestActiveTheme(t *testing.T) {
	c := testClient()
	c.theme = &fakeThemeService{themes: []goshopify.Theme{
		{ID: 1, Name: "Draft", Role: "unpublished"},
		{ID: 2, Name: "Dawn", Role: "main"},
	}}

	theme, err := c.ActiveTheme()

	require.NoError(t, err)
	assert.Equal(t, int64(2), theme.ID)
	assert.Equal(t, "Dawn", theme.Name)
}

func TestActiveThemeNonePublished(t *testing.T) {
	c := testClient()
	c.theme = &fakeThemeService{themes: []goshopify.Theme{
		{ID: 1, Role: "unpublished"},
	}}

	_, err := c.ActiveTheme()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAsset(t *testing.T) {
	c := testClient()
	c.asset = &fakeAssetService{assets: map[string]goshopify.Asset{
		"templates/index.liquid": {Key: "templates/index.liquid", Value: "<html></html>"},
	}}

	asset, err := c.GetAsset(2, "templates/index.liquid")
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", asset.Value)

	_, err = c.GetAsset(2, "templates/missing.liquid")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAsset(t *testing.T) {
	fake := &fakeAssetService{}
	c := testClient()
	c.asset = fake

	_, err := c.UpdateAsset(2, "snippets/banner.liquid", "{% comment %}sale{% endcomment %}")

	require.NoError(t, err)
	require.Len(t, fake.updated, 1)
	assert.Equal(t, int64(2), fake.updated[0].ThemeID)
	assert.Equal(t, "snippets/banner.liquid", fake.updated[0].Key)
}

func TestDeleteAsset(t *testing.T) {
	fake := &fakeAssetService{}
	c := testClient()
	c.asset = fake

	require.NoError(t, c.DeleteAsset(2, "snippets/banner.liquid"))
	assert.Equal(t, []string{"snippets/banner.liquid"}, fake.deleted)
}
