package analytics

import (
	"testing"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestComputeSalesContributionsAndSlowMovers(t *testing.T) {
	products := []goshopify.Product{
		{ID: 1, Title: "Summer Tee"},
		{ID: 2, Title: "Winter Coat"},
		{ID: 3, Title: "Wool Scarf"},
	}
	// Product 1 sells 20 units, product 2 sells 5, product 3 never sells.
	orders := []goshopify.Order{
		{
			ID:         100,
			TotalPrice: money("200.00"),
			LineItems: []goshopify.LineItem{
				{ProductID: 1, Title: "Summer Tee", Price: money("10.00"), Quantity: 12},
				{ProductID: 2, Title: "Winter Coat", Price: money("16.00"), Quantity: 5},
			},
		},
		{
			ID:         101,
			TotalPrice: money("80.00"),
			LineItems: []goshopify.LineItem{
				{ProductID: 1, Title: "Summer Tee", Price: money("10.00"), Quantity: 8},
			},
		},
	}

	report := ComputeSales(orders, products)

	assert.Equal(t, "$280.00", report.TotalSales)

	require.Len(t, report.ProductData, 2)
	tee := report.ProductData[0]
	assert.Equal(t, int64(1), tee.ProductID)
	assert.Equal(t, "$200.00", tee.Sales)
	assert.Equal(t, 20, tee.UnitsSold)
	assert.Equal(t, "80.00%", tee.Contribution)

	coat := report.ProductData[1]
	assert.Equal(t, int64(2), coat.ProductID)
	assert.Equal(t, "$80.00", coat.Sales)
	assert.Equal(t, 5, coat.UnitsSold)
	assert.Equal(t, "20.00%", coat.Contribution)

	// Only the unsold product is slow-moving: 20% is above the threshold.
	assert.Equal(t, []string{"Wool Scarf"}, report.SlowMovingProducts)
}

func TestComputeSalesFlagsLowContributionProducts(t *testing.T) {
	products := []goshopify.Product{
		{ID: 1, Title: "Bestseller"},
		{ID: 2, Title: "Shelf Warmer"},
	}
	orders := []goshopify.Order{
		{
			TotalPrice: money("100.00"),
			LineItems: []goshopify.LineItem{
				{ProductID: 1, Title: "Bestseller", Price: money("1.00"), Quantity: 97},
				{ProductID: 2, Title: "Shelf Warmer", Price: money("1.00"), Quantity: 3},
			},
		},
	}

	report := ComputeSales(orders, products)

	// 3% of units sold is at or below the 5% threshold.
	assert.Equal(t, []string{"Shelf Warmer"}, report.SlowMovingProducts)
}

func TestComputeSalesKeysBucketsByProductID(t *testing.T) {
	// Two distinct products sharing a title must not be merged.
	orders := []goshopify.Order{
		{
			TotalPrice: money("30.00"),
			LineItems: []goshopify.LineItem{
				{ProductID: 1, Title: "Gift Card", Price: money("10.00"), Quantity: 1},
				{ProductID: 2, Title: "Gift Card", Price: money("20.00"), Quantity: 1},
			},
		},
	}

	report := ComputeSales(orders, nil)

	require.Len(t, report.ProductData, 2)
	assert.Equal(t, "$10.00", report.ProductData[0].Sales)
	assert.Equal(t, "$20.00", report.ProductData[1].Sales)
}

func TestComputeSalesSkipsCustomLineItems(t *testing.T) {
	orders := []goshopify.Order{
		{
			TotalPrice: money("15.00"),
			LineItems: []goshopify.LineItem{
				{ProductID: 0, Title: "Tip", Price: money("5.00"), Quantity: 1},
				{ProductID: 7, Title: "Mug", Price: money("10.00"), Quantity: 1},
			},
		},
	}

	report := ComputeSales(orders, nil)

	// The custom item still counts toward total sales through the order total,
	// but gets no product bucket.
	assert.Equal(t, "$15.00", report.TotalSales)
	require.Len(t, report.ProductData, 1)
	assert.Equal(t, int64(7), report.ProductData[0].ProductID)
}

func TestComputeSalesEmptyStore(t *testing.T) {
	report := ComputeSales(nil, nil)

	assert.Equal(t, "$0.00", report.TotalSales)
	assert.Empty(t, report.ProductData)
	assert.Empty(t, report.SlowMovingProducts)
}

func TestComputeSalesNoOrdersFlagsWholeCatalog(t *testing.T) {
	products := []goshopify.Product{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B"},
	}

	report := ComputeSales(nil, products)

	assert.Equal(t, "$0.00", report.TotalSales)
	assert.Equal(t, []string{"A", "B"}, report.SlowMovingProducts)
}
