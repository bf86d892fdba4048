package analytics

import (
	goshopify "github.com/bold-commerce/go-shopify/v3"
)

// LowStockThreshold is the inventory quantity at or below which a variant is
// flagged for restocking.
const LowStockThreshold = 10

type LowStockVariant struct {
	ProductID         int64  `json:"product_id"`
	ProductName       string `json:"product_name"`
	VariantID         int64  `json:"variant_id"`
	VariantName       string `json:"variant_name"`
	InventoryQuantity int    `json:"inventory_quantity"`
}

type StockReport struct {
	LowStockProducts []LowStockVariant `json:"low_stock_products"`
}

// ComputeLowStock flags every variant whose available inventory is at or
// below the threshold. No aggregation beyond the filter.
func ComputeLowStock(products []goshopify.Product) *StockReport {
	low := make([]LowStockVariant, 0)
	for _, product := range products {
		for _, variant := range product.Variants {
			if variant.InventoryQuantity <= LowStockThreshold {
				low = append(low, LowStockVariant{
					ProductID:         product.ID,
					ProductName:       product.Title,
					VariantID:         variant.ID,
					VariantName:       variant.Title,
					InventoryQuantity: variant.InventoryQuantity,
				})
			}
		}
	}
	return &StockReport{LowStockProducts: low}
}

// ComputeStockLevels maps every variant id to its available inventory.
func ComputeStockLevels(products []goshopify.Product) map[int64]int {
	levels := make(map[int64]int)
	for _, product := range products {
		for _, variant := range product.Variants {
			levels[variant.ID] = variant.InventoryQuantity
		}
	}
	return levels
}
