package handlers

import (
	"net/http"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/gin-gonic/gin"

	"storeops/internal/logger"
	"storeops/internal/store"
)

type CollectionStore interface {
	CreateCollection(title, collectionType string) (*store.CollectionInfo, error)
	ListCollections(collectionType string) ([]store.CollectionInfo, error)
	UpdateCollection(id int64, title, collectionType string) (*store.CollectionInfo, error)
	DeleteCollection(id int64, collectionType string) error
	AddProductToCollection(productID, collectionID int64) (*goshopify.Collect, error)
}

type CollectionHandler struct {
	store  CollectionStore
	logger *logger.Logger
}

func NewCollectionHandler(store CollectionStore, logger *logger.Logger) *CollectionHandler {
	return &CollectionHandler{
		store:  store,
		logger: logger,
	}
}

func (h *CollectionHandler) Create(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
		Type  string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type == "" {
		req.Type = store.CollectionCustom
	}

	collection, err := h.store.CreateCollection(req.Title, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": collection})
}

func (h *CollectionHandler) List(c *gin.Context) {
	collections, err := h.store.ListCollections(c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": collections})
}

func (h *CollectionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Title string `json:"title"`
		Type  string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection, err := h.store.UpdateCollection(id, req.Title, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": collection})
}

func (h *CollectionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteCollection(id, c.Query("type")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func (h *CollectionHandler) AddProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		ProductID int64 `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collect, err := h.store.AddProductToCollection(req.ProductID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": collect})
}
