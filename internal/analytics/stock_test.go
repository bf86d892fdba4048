package analytics

import (
	"testing"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLowStockThresholdIsInclusive(t *testing.T) {
	products := []goshopify.Product{
		{
			ID:    1,
			Title: "Summer Tee",
			Variants: []goshopify.Variant{
				{ID: 11, Title: "Small", InventoryQuantity: 10},
				{ID: 12, Title: "Medium", InventoryQuantity: 11},
				{ID: 13, Title: "Large", InventoryQuantity: 0},
			},
		},
	}

	report := ComputeLowStock(products)

	require.Len(t, report.LowStockProducts, 2)
	assert.Equal(t, int64(11), report.LowStockProducts[0].VariantID)
	assert.Equal(t, 10, report.LowStockProducts[0].InventoryQuantity)
	assert.Equal(t, int64(13), report.LowStockProducts[1].VariantID)
	assert.Equal(t, "Summer Tee", report.LowStockProducts[1].ProductName)
	assert.Equal(t, "Large", report.LowStockProducts[1].VariantName)
}

func TestComputeLowStockWellStockedCatalog(t *testing.T) {
	products := []goshopify.Product{
		{ID: 1, Variants: []goshopify.Variant{{ID: 11, InventoryQuantity: 50}}},
	}

	report := ComputeLowStock(products)

	assert.NotNil(t, report.LowStockProducts)
	assert.Empty(t, report.LowStockProducts)
}

func TestComputeStockLevels(t *testing.T) {
	products := []goshopify.Product{
		{ID: 1, Variants: []goshopify.Variant{{ID: 11, InventoryQuantity: 3}, {ID: 12, InventoryQuantity: 40}}},
		{ID: 2, Variants: []goshopify.Variant{{ID: 21, InventoryQuantity: 0}}},
	}

	levels := ComputeStockLevels(products)

	assert.Equal(t, map[int64]int{11: 3, 12: 40, 21: 0}, levels)
}
