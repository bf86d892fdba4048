package handlers

import (
	"net/http"

	goshopify "github.com/bold-commerce/go-shopify/v3"
	"github.com/gin-gonic/gin"

	"storeops/internal/logger"
	"storeops/internal/store"
)

type ProductStore interface {
	CreateProduct(title, description string) (*goshopify.Product, error)
	GetProduct(identifier string) (*store.ProductDetails, error)
	GetAllProducts() ([]store.ProductRef, error)
	SearchProductsByTitle(query string) ([]store.ProductRef, error)
	UpdateProduct(id int64, input store.UpdateProductInput) (*store.ProductDetails, error)
	DeleteProduct(id int64) error
}

type ProductHandler struct {
	store  ProductStore
	logger *logger.Logger
}

func NewProductHandler(store ProductStore, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		store:  store,
		logger: logger,
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.store.CreateProduct(req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": product})
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.GetAllProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	products, err := h.store.SearchProductsByTitle(query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

// Get accepts a numeric product id or a product title.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.store.GetProduct(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input store.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.store.UpdateProduct(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteProduct(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
