package store

import (
	goshopify "github.com/bold-commerce/go-shopify/v3"
)

// pageFunc returns one page of records starting after the given cursor.
type pageFunc[T any] func(sinceID int64) ([]T, error)

// fetchAll drains a list endpoint with since_id cursor pagination: each page
// starts after the identifier of the previous page's last record, and a short
// page signals the end (the server never reports a total count up front).
//
// The result is one flat slice in server return order. If any page request
// fails the whole fetch fails and partial results are discarded. Records
// inserted or deleted at or below the cursor while paging can be missed or
// duplicated; identifier-cursor pagination gives no isolation against
// concurrent mutation.
func fetchAll[T any](page pageFunc[T], lastID func(T) int64, limit int) ([]T, error) {
	var (
		all     []T
		sinceID int64
	)
	for {
		records, err := page(sinceID)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
		if len(records) < limit {
			return all, nil
		}
		sinceID = lastID(records[len(records)-1])
	}
}

// AllProducts fetches every product in the store.
func (c *Client) AllProducts() ([]goshopify.Product, error) {
	return fetchAll(func(sinceID int64) ([]goshopify.Product, error) {
		return c.product.List(goshopify.ListOptions{SinceID: sinceID, Limit: c.pageLimit})
	}, func(p goshopify.Product) int64 { return p.ID }, c.pageLimit)
}

// AllOrders fetches every order regardless of status.
func (c *Client) AllOrders() ([]goshopify.Order, error) {
	return fetchAll(func(sinceID int64) ([]goshopify.Order, error) {
		return c.order.List(goshopify.OrderListOptions{
			ListOptions: goshopify.ListOptions{SinceID: sinceID, Limit: c.pageLimit},
			Status:      "any",
		})
	}, func(o goshopify.Order) int64 { return o.ID }, c.pageLimit)
}

// AllCustomers fetches every customer in the store.
func (c *Client) AllCustomers() ([]goshopify.Customer, error) {
	return fetchAll(func(sinceID int64) ([]goshopify.Customer, error) {
		return c.customer.List(goshopify.ListOptions{SinceID: sinceID, Limit: c.pageLimit})
	}, func(cu goshopify.Customer) int64 { return cu.ID }, c.pageLimit)
}
