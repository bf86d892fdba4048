package store

import (
	"fmt"

	goshopify "github.com/bold-commerce/go-shopify/v3"
)

// Collection types accepted by the collection commands.
const (
	CollectionCustom = "custom"
	CollectionSmart  = "smart"
)

// CollectionInfo is the command-surface view of a custom or smart collection.
type CollectionInfo struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Type   string `json:"type"`
}

// CreateCollection creates a custom or smart collection with the given title.
// An unrecognized collection type is rejected before any remote call.
func (c *Client) CreateCollection(title, collectionType string) (*CollectionInfo, error) {
	switch collectionType {
	case CollectionCustom:
		created, err := c.custom.Create(goshopify.CustomCollection{Title: title})
		if err != nil {
			return nil, fmt.Errorf("create custom collection %q: %w", title, err)
		}
		return &CollectionInfo{ID: created.ID, Title: created.Title, Handle: created.Handle, Type: CollectionCustom}, nil
	case CollectionSmart:
		created, err := c.smart.Create(goshopify.SmartCollection{Title: title})
		if err != nil {
			return nil, fmt.Errorf("create smart collection %q: %w", title, err)
		}
		return &CollectionInfo{ID: created.ID, Title: created.Title, Handle: created.Handle, Type: CollectionSmart}, nil
	default:
		return nil, ErrInvalidCollectionType
	}
}

// ListCollections returns collections of the given type, or of both types
// when collectionType is empty.
func (c *Client) ListCollections(collectionType string) ([]CollectionInfo, error) {
	var collections []CollectionInfo

	if collectionType == CollectionCustom || collectionType == "" {
		custom, err := c.custom.List(nil)
		if err != nil {
			return nil, fmt.Errorf("list custom collections: %w", err)
		}
		for _, cc := range custom {
			collections = append(collections, CollectionInfo{ID: cc.ID, Title: cc.Title, Handle: cc.Handle, Type: CollectionCustom})
		}
	} else if collectionType != CollectionSmart {
		return nil, ErrInvalidCollectionType
	}

	if collectionType == CollectionSmart || collectionType == "" {
		smart, err := c.smart.List(nil)
		if err != nil {
			return nil, fmt.Errorf("list smart collections: %w", err)
		}
		for _, sc := range smart {
			collections = append(collections, CollectionInfo{ID: sc.ID, Title: sc.Title, Handle: sc.Handle, Type: CollectionSmart})
		}
	}

	return collections, nil
}

// UpdateCollection renames a collection. An empty collection type is treated
// as custom, matching the create default.
func (c *Client) UpdateCollection(id int64, title, collectionType string) (*CollectionInfo, error) {
	switch collectionType {
	case CollectionCustom, "":
		collection, err := c.custom.Get(id, nil)
		if err != nil {
			return nil, fmt.Errorf("update custom collection %d: %w", id, err)
		}
		if collection == nil {
			return nil, ErrNotFound
		}
		if title != "" {
			collection.Title = title
		}
		updated, err := c.custom.Update(*collection)
		if err != nil {
			return nil, fmt.Errorf("update custom collection %d: %w", id, err)
		}
		return &CollectionInfo{ID: updated.ID, Title: updated.Title, Handle: updated.Handle, Type: CollectionCustom}, nil
	case CollectionSmart:
		collection, err := c.smart.Get(id, nil)
		if err != nil {
			return nil, fmt.Errorf("update smart collection %d: %w", id, err)
		}
		if collection == nil {
			return nil, ErrNotFound
		}
		if title != "" {
			collection.Title = title
		}
		updated, err := c.smart.Update(*collection)
		if err != nil {
			return nil, fmt.Errorf("update smart collection %d: %w", id, err)
		}
		return &CollectionInfo{ID: updated.ID, Title: updated.Title, Handle: updated.Handle, Type: CollectionSmart}, nil
	default:
		return nil, ErrInvalidCollectionType
	}
}

// DeleteCollection removes a collection. An empty collection type is treated
// as custom.
func (c *Client) DeleteCollection(id int64, collectionType string) error {
	switch collectionType {
	case CollectionCustom, "":
		if err := c.custom.Delete(id); err != nil {
			return fmt.Errorf("delete custom collection %d: %w", id, err)
		}
	case CollectionSmart:
		if err := c.smart.Delete(id); err != nil {
			return fmt.Errorf("delete smart collection %d: %w", id, err)
		}
	default:
		return ErrInvalidCollectionType
	}
	c.logger.Info("Deleted %s collection %d", collectionTypeOrCustom(collectionType), id)
	return nil
}

// AddProductToCollection places a product in a custom collection.
func (c *Client) AddProductToCollection(productID, collectionID int64) (*goshopify.Collect, error) {
	collect, err := c.collect.Create(goshopify.Collect{
		ProductID:    productID,
		CollectionID: collectionID,
	})
	if err != nil {
		return nil, fmt.Errorf("add product %d to collection %d: %w", productID, collectionID, err)
	}
	return collect, nil
}

func collectionTypeOrCustom(collectionType string) string {
	if collectionType == "" {
		return CollectionCustom
	}
	return collectionType
}
