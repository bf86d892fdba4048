package analytics

import (
	"fmt"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/shopspring/decimal"
)

// SlowMoverShare is the contribution percentage at or below which a product
// counts as slow-moving.
const SlowMoverShare = 5.0

// ProductSales is the aggregated sales bucket for one product. Buckets are
// keyed by product id; the title is carried for display only, so two distinct
// products sharing a title stay separate.
type ProductSales struct {
	ProductID    int64  `json:"product_id"`
	Title        string `json:"title"`
	Sales        string `json:"sales"`
	UnitsSold    int    `json:"count"`
	Contribution string `json:"contribution"`
}

type SalesReport struct {
	TotalSales         string         `json:"total_sales"`
	ProductData        []ProductSales `json:"product_data"`
	SlowMovingProducts []string       `json:"slow_moving_products"`
}

// ComputeSales folds the full order history into total sales, per-product
// sales with percentage contribution, and the slow-mover list. The product
// list must be fetched independently of the orders: products that never sold
// appear in no order and can only be flagged by walking the catalog itself.
func ComputeSales(orders []goshopify.Order, products []goshopify.Product) *SalesReport {
	totalSales := decimal.Zero
	for _, order := range orders {
		if order.TotalPrice != nil {
			totalSales = totalSales.Add(*order.TotalPrice)
		}
	}

	type bucket struct {
		title string
		sales decimal.Decimal
		units int
	}
	buckets := make(map[int64]*bucket)
	var bucketOrder []int64

	for _, order := range orders {
		for _, item := range order.LineItems {
			if item.ProductID == 0 {
				// Custom line items belong to no catalog product.
				continue
			}
			b, ok := buckets[item.ProductID]
			if !ok {
				b = &bucket{title: item.Title}
				buckets[item.ProductID] = b
				bucketOrder = append(bucketOrder, item.ProductID)
			}
			if item.Price != nil {
				b.sales = b.sales.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			}
			b.units += item.Quantity
		}
	}

	totalUnits := 0
	for _, b := range buckets {
		totalUnits += b.units
	}

	contribution := func(units int) float64 {
		if totalUnits == 0 {
			return 0
		}
		return float64(units) / float64(totalUnits) * 100
	}

	productData := make([]ProductSales, 0, len(buckets))
	for _, id := range bucketOrder {
		b := buckets[id]
		entry := ProductSales{
			ProductID:    id,
			Title:        b.title,
			Sales:        "$" + b.sales.StringFixed(2),
			UnitsSold:    b.units,
			Contribution: "0%",
		}
		if b.units > 0 {
			entry.Contribution = fmt.Sprintf("%.2f%%", contribution(b.units))
		}
		productData = append(productData, entry)
	}

	slowMoving := make([]string, 0)
	for _, p := range products {
		b := buckets[p.ID]
		if b == nil || b.units == 0 || contribution(b.units) <= SlowMoverShare {
			slowMoving = append(slowMoving, p.Title)
		}
	}

	return &SalesReport{
		TotalSales:         "$" + totalSales.StringFixed(2),
		ProductData:        productData,
		SlowMovingProducts: slowMoving,
	}
}
