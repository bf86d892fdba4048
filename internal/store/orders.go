package store

import (
	"fmt"
	"strings"
	"time"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/shopspring/decimal"
)

type LineItemSummary struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
}

type OrderSummary struct {
	OrderID    int64             `json:"order_id"`
	OrderDate  *time.Time        `json:"order_date"`
	CustomerID int64             `json:"customer"`
	LineItems  []LineItemSummary `json:"line_items"`
	TotalPrice string            `json:"total_price"`
}

type UnfulfilledOrder struct {
	OrderID      int64  `json:"order_id"`
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"name"`
	OrderValue   string `json:"order_value"`
}

type FulfilledOrder struct {
	OrderID           int64  `json:"order_id"`
	OrderName         string `json:"order_name"`
	FulfillmentStatus string `json:"fulfillment_status"`
}

type ReturnRecord struct {
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"name"`
	OrderID      int64  `json:"order_id"`
	RefundAmount string `json:"refund_amount"`
}

// OrderSummaries fetches every order and flattens it into per-order summaries
// with resolved product names. This is the one command that swallows remote
// failures: a failed fetch is logged and yields an empty list so a transient
// store error does not abort an agent run.
func (c *Client) OrderSummaries() ([]OrderSummary, error) {
	orders, err := c.AllOrders()
	if err != nil {
		c.logger.Error("Error fetching orders: %v", err)
		return []OrderSummary{}, nil
	}
	c.logger.Info("Fetched %d orders", len(orders))

	products, err := c.AllProducts()
	if err != nil {
		c.logger.Error("Error fetching products for order summaries: %v", err)
		return []OrderSummary{}, nil
	}

	return summarizeOrders(orders, productTitles(products)), nil
}

// summarizeOrders builds order summaries from fully materialized record sets.
// Line-item product names come from the titles map; items whose product no
// longer exists keep an empty name.
func summarizeOrders(orders []goshopify.Order, titles map[int64]string) []OrderSummary {
	summaries := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		items := make([]LineItemSummary, 0, len(order.LineItems))
		for _, item := range order.LineItems {
			items = append(items, LineItemSummary{
				ProductID:   item.ProductID,
				ProductName: titles[item.ProductID],
				Quantity:    item.Quantity,
				Price:       decimalString(item.Price),
			})
		}

		var customerID int64
		if order.Customer != nil {
			customerID = order.Customer.ID
		}

		summaries = append(summaries, OrderSummary{
			OrderID:    order.ID,
			OrderDate:  order.CreatedAt,
			CustomerID: customerID,
			LineItems:  items,
			TotalPrice: decimalString(order.TotalPrice),
		})
	}
	return summaries
}

// UnfulfilledOrders lists orders that have not been fulfilled yet.
func (c *Client) UnfulfilledOrders() ([]UnfulfilledOrder, error) {
	orders, err := fetchAll(func(sinceID int64) ([]goshopify.Order, error) {
		return c.order.List(goshopify.OrderListOptions{
			ListOptions:       goshopify.ListOptions{SinceID: sinceID, Limit: c.pageLimit},
			Status:            "any",
			FulfillmentStatus: "unfulfilled",
		})
	}, func(o goshopify.Order) int64 { return o.ID }, c.pageLimit)
	if err != nil {
		return nil, fmt.Errorf("list unfulfilled orders: %w", err)
	}

	unfulfilled := make([]UnfulfilledOrder, 0, len(orders))
	for _, order := range orders {
		entry := UnfulfilledOrder{
			OrderID:    order.ID,
			OrderValue: lineItemTotal(order.LineItems).StringFixed(2),
		}
		if order.Customer != nil {
			entry.CustomerID = order.Customer.ID
			entry.CustomerName = customerName(order.Customer)
		}
		unfulfilled = append(unfulfilled, entry)
	}
	return unfulfilled, nil
}

// FulfillPendingOrders creates a fulfillment for every order that is
// unfulfilled or partially fulfilled, covering all of its line items and
// notifying the customer. Orders fulfilled before a later failure stay
// fulfilled; there is no rollback.
func (c *Client) FulfillPendingOrders() ([]FulfilledOrder, error) {
	orders, err := c.AllOrders()
	if err != nil {
		return nil, fmt.Errorf("fulfill orders: %w", err)
	}

	fulfilled := make([]FulfilledOrder, 0)
	for _, order := range ordersNeedingFulfillment(orders) {
		items := make([]goshopify.LineItem, 0, len(order.LineItems))
		for _, item := range order.LineItems {
			items = append(items, goshopify.LineItem{ID: item.ID})
		}

		_, err := c.order.CreateFulfillment(order.ID, goshopify.Fulfillment{
			NotifyCustomer: true,
			LineItems:      items,
		})
		if err != nil {
			return fulfilled, fmt.Errorf("fulfill order %d: %w", order.ID, err)
		}

		c.logger.Info("Fulfilled order %d (%s)", order.ID, order.Name)
		fulfilled = append(fulfilled, FulfilledOrder{
			OrderID:           order.ID,
			OrderName:         order.Name,
			FulfillmentStatus: string(order.FulfillmentStatus),
		})
	}
	return fulfilled, nil
}

// ordersNeedingFulfillment selects orders with no fulfillment or a partial
// one, preserving input order.
func ordersNeedingFulfillment(orders []goshopify.Order) []goshopify.Order {
	var pending []goshopify.Order
	for _, order := range orders {
		if order.FulfillmentStatus == "" || order.FulfillmentStatus == "partial" {
			pending = append(pending, order)
		}
	}
	return pending
}

// CustomersWithReturns reports every refund across the order history together
// with the owning customer. Refunds on anonymous orders are skipped.
func (c *Client) CustomersWithReturns() ([]ReturnRecord, error) {
	orders, err := c.AllOrders()
	if err != nil {
		return nil, fmt.Errorf("list customers with returns: %w", err)
	}

	var records []ReturnRecord
	for _, order := range orders {
		if order.Customer == nil {
			continue
		}
		for _, refund := range order.Refunds {
			amount := decimal.Zero
			for _, rli := range refund.RefundLineItems {
				if rli.Subtotal != nil {
					amount = amount.Add(*rli.Subtotal)
				}
			}
			records = append(records, ReturnRecord{
				CustomerID:   order.Customer.ID,
				CustomerName: customerName(order.Customer),
				OrderID:      order.ID,
				RefundAmount: amount.StringFixed(2),
			})
		}
	}
	return records, nil
}

func productTitles(products []goshopify.Product) map[int64]string {
	titles := make(map[int64]string, len(products))
	for _, p := range products {
		titles[p.ID] = p.Title
	}
	return titles
}

func lineItemTotal(items []goshopify.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Price != nil {
			total = total.Add(*item.Price)
		}
	}
	return total
}

func customerName(customer *goshopify.Customer) string {
	return strings.TrimSpace(customer.FirstName + " " + customer.LastName)
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return "0"
	}
	return d.String()
}
