package analytics

import (
	"strings"
	"time"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/shopspring/decimal"
)

type OrderDetail struct {
	OrderID    int64      `json:"order_id"`
	Date       *time.Time `json:"date"`
	Purchases  []string   `json:"purchases"`
	TotalSpent string     `json:"total_spent"`
}

type CustomerActivity struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	TotalSpent   string        `json:"total_spent"`
	TotalOrders  int           `json:"total_orders"`
	OrderDetails []OrderDetail `json:"order_details"`
}

type CustomerReport struct {
	CustomerBehavior []CustomerActivity `json:"customer_behavior"`
}

// ComputeCustomerBehavior attributes the order history to customers. Every
// known customer gets an entry, so customers with zero orders show up with
// empty order details and zero totals. Orders without an attached customer,
// or whose customer is no longer in the customer list, are skipped.
func ComputeCustomerBehavior(customers []goshopify.Customer, orders []goshopify.Order, products []goshopify.Product) *CustomerReport {
	titles := make(map[int64]string, len(products))
	for _, p := range products {
		titles[p.ID] = p.Title
	}

	type activity struct {
		name    string
		email   string
		spent   decimal.Decimal
		details []OrderDetail
	}
	byCustomer := make(map[int64]*activity, len(customers))
	for _, c := range customers {
		byCustomer[c.ID] = &activity{
			name:    strings.TrimSpace(c.FirstName + " " + c.LastName),
			email:   c.Email,
			details: []OrderDetail{},
		}
	}

	for _, order := range orders {
		if order.Customer == nil {
			continue
		}
		entry, ok := byCustomer[order.Customer.ID]
		if !ok {
			continue
		}

		orderTotal := decimal.Zero
		purchases := make([]string, 0, len(order.LineItems))
		for _, item := range order.LineItems {
			if item.Price != nil {
				orderTotal = orderTotal.Add(*item.Price)
			}
			if title, ok := titles[item.ProductID]; ok {
				purchases = append(purchases, title)
			} else {
				purchases = append(purchases, item.Title)
			}
		}

		entry.spent = entry.spent.Add(orderTotal)
		entry.details = append(entry.details, OrderDetail{
			OrderID:    order.ID,
			Date:       order.CreatedAt,
			Purchases:  purchases,
			TotalSpent: orderTotal.StringFixed(2),
		})
	}

	behavior := make([]CustomerActivity, 0, len(customers))
	for _, c := range customers {
		entry := byCustomer[c.ID]
		behavior = append(behavior, CustomerActivity{
			ID:           c.ID,
			Name:         entry.name,
			Email:        entry.email,
			TotalSpent:   entry.spent.StringFixed(2),
			TotalOrders:  len(entry.details),
			OrderDetails: entry.details,
		})
	}

	return &CustomerReport{CustomerBehavior: behavior}
}
