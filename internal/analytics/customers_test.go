package analytics

import (
	"testing"
	"time"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCustomerBehaviorAttributesOrders(t *testing.T) {
	placed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	customers := []goshopify.Customer{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		{ID: 2, FirstName: "Alan", LastName: "Turing", Email: "alan@example.com"},
	}
	products := []goshopify.Product{
		{ID: 10, Title: "Summer Tee"},
	}
	orders := []goshopify.Order{
		{
			ID:        100,
			CreatedAt: &placed,
			Customer:  &goshopify.Customer{ID: 1},
			LineItems: []goshopify.LineItem{
				{ProductID: 10, Title: "summer tee (variant)", Price: money("25.00"), Quantity: 1},
				{ProductID: 99, Title: "Mystery Box", Price: money("5.50"), Quantity: 1},
			},
		},
		{
			ID:       101,
			Customer: &goshopify.Customer{ID: 1},
			LineItems: []goshopify.LineItem{
				{ProductID: 10, Price: money("25.00"), Quantity: 2},
			},
		},
	}

	report := ComputeCustomerBehavior(customers, orders, products)

	require.Len(t, report.CustomerBehavior, 2)

	ada := report.CustomerBehavior[0]
	assert.Equal(t, int64(1), ada.ID)
	assert.Equal(t, "Ada Lovelace", ada.Name)
	assert.Equal(t, "ada@example.com", ada.Email)
	assert.Equal(t, 2, ada.TotalOrders)
	assert.Equal(t, "55.50", ada.TotalSpent)

	require.Len(t, ada.OrderDetails, 2)
	first := ada.OrderDetails[0]
	assert.Equal(t, int64(100), first.OrderID)
	require.NotNil(t, first.Date)
	assert.True(t, first.Date.Equal(placed))
	// Known product ids resolve to catalog titles; unknown ones fall back to
	// the line item's own title.
	assert.Equal(t, []string{"Summer Tee", "Mystery Box"}, first.Purchases)
	assert.Equal(t, "30.50", first.TotalSpent)
}

func TestComputeCustomerBehaviorIncludesZeroOrderCustomers(t *testing.T) {
	customers := []goshopify.Customer{
		{ID: 1, FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"},
	}

	report := ComputeCustomerBehavior(customers, nil, nil)

	require.Len(t, report.CustomerBehavior, 1)
	grace := report.CustomerBehavior[0]
	assert.Equal(t, 0, grace.TotalOrders)
	assert.Equal(t, "0.00", grace.TotalSpent)
	assert.NotNil(t, grace.OrderDetails)
	assert.Empty(t, grace.OrderDetails)
}

func TestComputeCustomerBehaviorSkipsUnattributedOrders(t *testing.T) {
	customers := []goshopify.Customer{
		{ID: 1, FirstName: "Ada"},
	}
	orders := []goshopify.Order{
		// Guest checkout, no customer at all.
		{ID: 100, LineItems: []goshopify.LineItem{{ProductID: 10, Price: money("9.00"), Quantity: 1}}},
		// Customer deleted since the order was placed.
		{ID: 101, Customer: &goshopify.Customer{ID: 42}, LineItems: []goshopify.LineItem{{ProductID: 10, Price: money("9.00"), Quantity: 1}}},
	}

	report := ComputeCustomerBehavior(customers, orders, nil)

	require.Len(t, report.CustomerBehavior, 1)
	assert.Equal(t, 0, report.CustomerBehavior[0].TotalOrders)
	assert.Equal(t, "0.00", report.CustomerBehavior[0].TotalSpent)
}

func TestComputeCustomerBehaviorPreservesCustomerOrder(t *testing.T) {
	customers := []goshopify.Customer{
		{ID: 3, FirstName: "C"},
		{ID: 1, FirstName: "A"},
		{ID: 2, FirstName: "B"},
	}

	report := ComputeCustomerBehavior(customers, nil, nil)

	ids := make([]int64, 0, len(report.CustomerBehavior))
	for _, c := range report.CustomerBehavior {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{3, 1, 2}, ids)
}
