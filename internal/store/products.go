package store

import (
	"fmt"
	"strconv"
	"strings"

	goshopify "github.com/bold-commerce/go-shopify/v3"
)

// ProductRef is the (id, title) pair returned by the bulk product listing.
type ProductRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type MetafieldInfo struct {
	Namespace string      `json:"namespace"`
	Key       string      `json:"key"`
	Value     interface{} `json:"value"`
	Type      string      `json:"type,omitempty"`
}

// ProductDetails is the command-surface view of a product: the typed fields
// the commands manipulate plus its metafields.
type ProductDetails struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Tags        string          `json:"tags"`
	Metafields  []MetafieldInfo `json:"metafields"`
}

// UpdateProductInput carries the optional fields of a product update; nil
// means leave unchanged.
type UpdateProductInput struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Tags        *string              `json:"tags"`
	Metafields  []goshopify.Metafield `json:"metafields"`
}

// CreateProduct creates a product with the given title and description.
func (c *Client) CreateProduct(title, description string) (*goshopify.Product, error) {
	product, err := c.product.Create(goshopify.Product{
		Title:    title,
		BodyHTML: description,
	})
	if err != nil {
		return nil, fmt.Errorf("create product %q: %w", title, err)
	}
	c.logger.Info("Created product %d (%s)", product.ID, product.Title)
	return product, nil
}

// GetProduct fetches a product by id or title. A numeric identifier is
// treated as an id; anything else is matched case-insensitively against the
// titles of the full product list.
func (c *Client) GetProduct(identifier string) (*ProductDetails, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		product, err := c.product.Get(id, nil)
		if err != nil {
			return nil, fmt.Errorf("get product %d: %w", id, err)
		}
		if product == nil {
			return nil, ErrNotFound
		}
		return c.describeProduct(product)
	}

	products, err := c.AllProducts()
	if err != nil {
		return nil, fmt.Errorf("get product %q: %w", identifier, err)
	}
	for i := range products {
		if strings.EqualFold(products[i].Title, identifier) {
			return c.describeProduct(&products[i])
		}
	}
	return nil, ErrNotFound
}

// GetAllProducts returns the id and title of every product, in server order.
func (c *Client) GetAllProducts() ([]ProductRef, error) {
	products, err := c.AllProducts()
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	c.logger.Info("Found %d products", len(products))

	refs := make([]ProductRef, 0, len(products))
	for _, p := range products {
		refs = append(refs, ProductRef{ID: p.ID, Title: p.Title})
	}
	return refs, nil
}

// SearchProductsByTitle returns every product whose title contains the query,
// case-insensitively.
func (c *Client) SearchProductsByTitle(query string) ([]ProductRef, error) {
	needle := strings.ToLower(query)

	products, err := c.AllProducts()
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}

	var matches []ProductRef
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			matches = append(matches, ProductRef{ID: p.ID, Title: p.Title})
		}
	}
	return matches, nil
}

// UpdateProduct applies the non-nil fields of input to the product and
// returns the refreshed details.
func (c *Client) UpdateProduct(id int64, input UpdateProductInput) (*ProductDetails, error) {
	product, err := c.product.Get(id, nil)
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	if product == nil {
		return nil, ErrNotFound
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.BodyHTML = *input.Description
	}
	if input.Tags != nil {
		product.Tags = *input.Tags
	}

	updated, err := c.product.Update(*product)
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}

	for _, mf := range input.Metafields {
		if _, err := c.product.CreateMetafield(id, mf); err != nil {
			return nil, fmt.Errorf("update product %d: add metafield %s.%s: %w", id, mf.Namespace, mf.Key, err)
		}
	}

	c.logger.Info("Product %d updated successfully", id)
	return c.describeProduct(updated)
}

// DeleteProduct removes a product from the store.
func (c *Client) DeleteProduct(id int64) error {
	if err := c.product.Delete(id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	c.logger.Info("Deleted product %d", id)
	return nil
}

func (c *Client) describeProduct(product *goshopify.Product) (*ProductDetails, error) {
	metafields, err := c.product.ListMetafields(product.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("list metafields for product %d: %w", product.ID, err)
	}

	info := make([]MetafieldInfo, 0, len(metafields))
	for _, mf := range metafields {
		info = append(info, MetafieldInfo{
			Namespace: mf.Namespace,
			Key:       mf.Key,
			Value:     mf.Value,
			Type:      string(mf.Type),
		})
	}

	return &ProductDetails{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.BodyHTML,
		Tags:        product.Tags,
		Metafields:  info,
	}, nil
}
